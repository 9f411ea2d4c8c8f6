package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bitfantasy/fmea/internal/fmea/entity"
	"github.com/bitfantasy/fmea/internal/fmea/repository"
	"github.com/bitfantasy/fmea/internal/fmea/worksheet"
)

// FMEAService FMEA文档服务
type FMEAService struct {
	repo *repository.FMEARepository
}

// NewFMEAService 创建FMEA文档服务
func NewFMEAService(repo *repository.FMEARepository) *FMEAService {
	return &FMEAService{repo: repo}
}

// Save 保存文档，每次保存都创建一份新记录，返回存储分配的ID。
// 客户端行ID被丢弃，由数据库重新分配；行顺序通过 sort_order 保留。
func (s *FMEAService) Save(ctx context.Context, doc *worksheet.Document) (int64, error) {
	header := toEntity(doc)
	if err := s.repo.Create(ctx, header); err != nil {
		return 0, fmt.Errorf("保存FMEA失败: %w", err)
	}
	return header.ID, nil
}

// Get 根据ID获取文档
func (s *FMEAService) Get(ctx context.Context, id int64) (*worksheet.Document, error) {
	header, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocument(header), nil
}

// Latest 获取最近保存的文档，空库返回 repository.ErrNotFound
func (s *FMEAService) Latest(ctx context.Context) (*worksheet.Document, error) {
	header, err := s.repo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	return toDocument(header), nil
}

// List 列出所有文档摘要，按保存顺序倒序
func (s *FMEAService) List(ctx context.Context) ([]worksheet.Summary, error) {
	headers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取FMEA列表失败: %w", err)
	}
	summaries := make([]worksheet.Summary, 0, len(headers))
	for _, h := range headers {
		summaries = append(summaries, worksheet.Summary{
			ID:           h.ID,
			ProductName:  h.ProductName,
			FMEANumber:   h.FMEANumber,
			DatePrepared: h.DatePrepared,
		})
	}
	return summaries, nil
}

// toEntity 工作表文档转数据库实体
func toEntity(doc *worksheet.Document) *entity.FMEAHeader {
	h := doc.Header
	header := &entity.FMEAHeader{
		Company:       h.Company,
		ProductName:   h.ProductName,
		ProductNumber: h.ProductNumber,
		ModelYear:     h.ModelYear,
		Team:          h.Team,
		PreparedBy:    h.PreparedBy,
		DatePrepared:  h.DatePrepared,
		ApprovedBy:    h.ApprovedBy,
		DateApproved:  h.DateApproved,
		Revision:      h.Revision,
		Page:          h.Page,
		FMEAType:      h.FMEAType,
		FMEANumber:    h.FMEANumber,
	}
	for i, row := range doc.Rows {
		header.Rows = append(header.Rows, entity.FMEARow{
			SortOrder:                 i,
			Item:                      row.Item,
			FailureMode:               row.FailureMode,
			EffectsOfFailure:          row.EffectsOfFailure,
			Severity:                  row.Severity,
			Classification:            row.Classification,
			CausesOfFailure:           row.CausesOfFailure,
			Occurrence:                row.Occurrence,
			CurrentControlsPrevention: row.CurrentControlsPrevention,
			CurrentControlsDetection:  row.CurrentControlsDetection,
			Detection:                 row.Detection,
			RPN:                       row.RPN,
			RecommendedActions:        row.RecommendedActions,
			Responsibility:            row.Responsibility,
			TargetDate:                row.TargetDate,
			ActionsTaken:              row.ActionsTaken,
			CompletionDate:            row.CompletionDate,
			NewSeverity:               row.NewSeverity,
			NewOccurrence:             row.NewOccurrence,
			NewDetection:              row.NewDetection,
			NewRPN:                    row.NewRPN,
		})
	}
	return header
}

// toDocument 数据库实体转工作表文档，行ID以十进制字符串形式返回
func toDocument(header *entity.FMEAHeader) *worksheet.Document {
	doc := &worksheet.Document{
		Header: worksheet.Header{
			Company:       header.Company,
			ProductName:   header.ProductName,
			ProductNumber: header.ProductNumber,
			ModelYear:     header.ModelYear,
			Team:          header.Team,
			PreparedBy:    header.PreparedBy,
			DatePrepared:  header.DatePrepared,
			ApprovedBy:    header.ApprovedBy,
			DateApproved:  header.DateApproved,
			Revision:      header.Revision,
			Page:          header.Page,
			FMEAType:      header.FMEAType,
			FMEANumber:    header.FMEANumber,
		},
		Rows: make([]worksheet.Row, 0, len(header.Rows)),
	}
	for _, row := range header.Rows {
		doc.Rows = append(doc.Rows, worksheet.Row{
			ID:                        strconv.FormatInt(row.ID, 10),
			Item:                      row.Item,
			FailureMode:               row.FailureMode,
			EffectsOfFailure:          row.EffectsOfFailure,
			Severity:                  row.Severity,
			Classification:            row.Classification,
			CausesOfFailure:           row.CausesOfFailure,
			Occurrence:                row.Occurrence,
			CurrentControlsPrevention: row.CurrentControlsPrevention,
			CurrentControlsDetection:  row.CurrentControlsDetection,
			Detection:                 row.Detection,
			RPN:                       row.RPN,
			RecommendedActions:        row.RecommendedActions,
			Responsibility:            row.Responsibility,
			TargetDate:                row.TargetDate,
			ActionsTaken:              row.ActionsTaken,
			CompletionDate:            row.CompletionDate,
			NewSeverity:               row.NewSeverity,
			NewOccurrence:             row.NewOccurrence,
			NewDetection:              row.NewDetection,
			NewRPN:                    row.NewRPN,
		})
	}
	return doc
}
