package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FMEA工作表导出列
var fmeaExportHeaders = []string{
	"项目", "失效模式", "失效影响", "S", "分类", "失效原因", "O",
	"现行控制-预防", "现行控制-检测", "D", "RPN",
	"建议措施", "责任人", "目标日期", "已采取措施", "完成日期",
	"S'", "O'", "D'", "RPN'",
}

// Export 导出FMEA文档为xlsx
func (s *FMEAService) Export(ctx context.Context, id int64) (*excelize.File, string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "FMEA"
	f.SetSheetName("Sheet1", sheet)

	// 表头元数据区
	meta := [][2]string{
		{"公司", doc.Header.Company},
		{"产品名称", doc.Header.ProductName},
		{"产品编号", doc.Header.ProductNumber},
		{"型号年份", doc.Header.ModelYear},
		{"团队", doc.Header.Team},
		{"编制", doc.Header.PreparedBy},
		{"编制日期", doc.Header.DatePrepared},
		{"批准", doc.Header.ApprovedBy},
		{"批准日期", doc.Header.DateApproved},
		{"版本", doc.Header.Revision},
		{"FMEA类型", doc.Header.FMEAType},
		{"FMEA编号", doc.Header.FMEANumber},
	}
	for i, kv := range meta {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), kv[1])
	}

	// 表格区表头样式: 加粗
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	tableStart := len(meta) + 2
	for i, h := range fmeaExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, tableStart)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	// 写入数据行
	for rowIdx, row := range doc.Rows {
		n := tableStart + rowIdx + 1
		values := []interface{}{
			row.Item, row.FailureMode, row.EffectsOfFailure, row.Severity,
			row.Classification, row.CausesOfFailure, row.Occurrence,
			row.CurrentControlsPrevention, row.CurrentControlsDetection,
			row.Detection, row.RPN,
			row.RecommendedActions, row.Responsibility, row.TargetDate,
			row.ActionsTaken, row.CompletionDate,
			row.NewSeverity, row.NewOccurrence, row.NewDetection, row.NewRPN,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, n), v)
		}
	}

	// 列宽
	colWidths := []float64{16, 16, 16, 5, 6, 16, 5, 16, 16, 5, 7, 16, 10, 12, 16, 12, 5, 5, 5, 7}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	name := doc.Header.FMEANumber
	if name == "" {
		name = doc.Header.ProductName
	}
	if name == "" {
		name = fmt.Sprintf("%d", id)
	}
	filename := fmt.Sprintf("FMEA_%s.xlsx", name)
	return f, filename, nil
}
