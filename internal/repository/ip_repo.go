package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"novarix_studio_v1/internal/model"
)

// ==================== IPBlacklistRepository IP 黑名单仓库 ====================

// IPBlacklistRepository IP 黑名单仓库接口
type IPBlacklistRepository interface {
	Add(ctx context.Context, ip string) error
	Remove(ctx context.Context, ip string) error
	Exists(ctx context.Context, ip string) (bool, error)
	ListAll(ctx context.Context) ([]model.IPBlacklist, error)
}

// ==================== 实现 ====================

type ipBlacklistRepository struct {
	db *gorm.DB
}

// NewIPBlacklistRepository 创建 IP 黑名单仓库
func NewIPBlacklistRepository(db *gorm.DB) IPBlacklistRepository {
	return &ipBlacklistRepository{db: db}
}

// Add 加入黑名单，重复加入不报错
func (r *ipBlacklistRepository) Add(ctx context.Context, ip string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.IPBlacklist{IP: ip}).Error
}

// Remove 移出黑名单
func (r *ipBlacklistRepository) Remove(ctx context.Context, ip string) error {
	return r.db.WithContext(ctx).
		Where("ip = ?", ip).
		Delete(&model.IPBlacklist{}).Error
}

// Exists 检查 IP 是否被拉黑
func (r *ipBlacklistRepository) Exists(ctx context.Context, ip string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.IPBlacklist{}).
		Where("ip = ?", ip).
		Count(&count).Error
	return count > 0, err
}

// ListAll 全部黑名单 IP
func (r *ipBlacklistRepository) ListAll(ctx context.Context) ([]model.IPBlacklist, error) {
	var list []model.IPBlacklist
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
