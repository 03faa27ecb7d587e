package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"novarix_studio_v1/internal/model"
)

// ==================== PartnerRepository 合作伙伴仓库 ====================

// PartnerRepository 合作伙伴仓库接口
type PartnerRepository interface {
	Create(ctx context.Context, partner *model.Partner) error
	GetByID(ctx context.Context, id int64) (*model.Partner, error)
	Update(ctx context.Context, partner *model.Partner) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]model.Partner, error)
	ListActive(ctx context.Context) ([]model.Partner, error)
}

// ==================== 实现 ====================

type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository 创建合作伙伴仓库
func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

// Create 创建合作伙伴
func (r *partnerRepository) Create(ctx context.Context, partner *model.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

// GetByID 根据 ID 获取合作伙伴
func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*model.Partner, error) {
	var partner model.Partner
	err := r.db.WithContext(ctx).First(&partner, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &partner, err
}

// Update 保存合作伙伴
func (r *partnerRepository) Update(ctx context.Context, partner *model.Partner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}

// Delete 删除合作伙伴
func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Partner{}, id).Error
}

// ListAll 全部合作伙伴（管理端），按创建时间倒序
func (r *partnerRepository) ListAll(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&partners).Error
	return partners, err
}

// ListActive 启用中的合作伙伴（公开列表）
func (r *partnerRepository) ListActive(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&partners).Error
	return partners, err
}
