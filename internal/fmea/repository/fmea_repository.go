package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/fmea/internal/fmea/entity"
	"gorm.io/gorm"
)

// FMEARepository FMEA文档仓库
type FMEARepository struct {
	db *gorm.DB
}

// NewFMEARepository 创建FMEA文档仓库
func NewFMEARepository(db *gorm.DB) *FMEARepository {
	return &FMEARepository{db: db}
}

// Create 创建文档（表头加所有行，单事务）
func (r *FMEARepository) Create(ctx context.Context, header *entity.FMEAHeader) error {
	return r.db.WithContext(ctx).Create(header).Error
}

// FindByID 根据ID查找文档，预加载行并按 sort_order 排序
func (r *FMEARepository) FindByID(ctx context.Context, id int64) (*entity.FMEAHeader, error) {
	var header entity.FMEAHeader
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&header, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &header, nil
}

// FindLatest 查找最近保存的文档（ID最大）
func (r *FMEARepository) FindLatest(ctx context.Context) (*entity.FMEAHeader, error) {
	var header entity.FMEAHeader
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("id DESC").
		First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &header, nil
}

// List 列出所有文档表头，ID降序，不加载行
func (r *FMEARepository) List(ctx context.Context) ([]entity.FMEAHeader, error) {
	var headers []entity.FMEAHeader
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&headers).Error
	return headers, err
}
