package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"novarix_studio_v1/internal/model"
)

// ErrMonthlyQuotaExceeded 当月订单数已达上限
var ErrMonthlyQuotaExceeded = errors.New("monthly order quota exceeded")

// OrderStats 用户订单统计
type OrderStats struct {
	ThisMonth int64 `json:"this_month"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// ==================== OrderRepository 订单仓库 ====================

// OrderRepository 订单仓库接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	// CreateWithinQuota 在单个事务内完成「当月计数 + 插入」，
	// 并发下单不会突破配额
	CreateWithinQuota(ctx context.Context, order *model.Order, limit int64) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string, notes *string) error
	CountForUserInMonth(ctx context.Context, userID int64, monthStart time.Time) (int64, error)
	StatsForUser(ctx context.Context, userID int64) (*OrderStats, error)
}

// ==================== 实现 ====================

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create 创建订单（团队角色不限额时使用）
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateWithinQuota 配额内创建订单
func (r *orderRepository) CreateWithinQuota(ctx context.Context, order *model.Order, limit int64) error {
	monthStart := monthStartOf(time.Now())
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Order{}).
			Where("user_id = ? AND created_at >= ?", order.UserID, monthStart).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= limit {
			return ErrMonthlyQuotaExceeded
		}
		return tx.Create(order).Error
	})
}

// GetByID 根据 ID 获取订单（带所有者信息）
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("User").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

// ListByUser 某个用户的订单，按创建时间倒序
func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll 全部订单（带所有者信息），按创建时间倒序
// 所有者可能已被删除，Preload 结果为 nil 时由上层容忍
func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus 更新订单状态与备注
// notes 为 nil 时保持原值
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string, notes *string) error {
	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CountForUserInMonth 统计用户自 monthStart 起创建的订单数
func (r *orderRepository) CountForUserInMonth(ctx context.Context, userID int64, monthStart time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("user_id = ? AND created_at >= ?", userID, monthStart).
		Count(&count).Error
	return count, err
}

// StatsForUser 用户订单统计（本月提交数 / 进行中 / 已完成）
func (r *orderRepository) StatsForUser(ctx context.Context, userID int64) (*OrderStats, error) {
	stats := &OrderStats{}

	thisMonth, err := r.CountForUserInMonth(ctx, userID, monthStartOf(time.Now()))
	if err != nil {
		return nil, err
	}
	stats.ThisMonth = thisMonth

	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("user_id = ? AND status = ?", userID, model.OrderStatusInProgress).
		Count(&stats.Active).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("user_id = ? AND status = ?", userID, model.OrderStatusCompleted).
		Count(&stats.Completed).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// monthStartOf 服务器本地时区的当月起点
func monthStartOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
