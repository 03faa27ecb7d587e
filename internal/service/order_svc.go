package service

import (
	"context"
	"errors"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// MonthlyOrderQuota customer 角色每个自然月的下单上限
const MonthlyOrderQuota = 3

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Create 创建订单
// customer 受每月配额限制（计数 + 插入在同一事务内），团队角色不限额
func (s *OrderService) Create(ctx context.Context, user *model.User, req *dto.CreateOrderRequest) (*dto.OrderInfo, error) {
	order := &model.Order{
		UserID:      user.ID,
		DiscordName: req.DiscordName,
		BotName:     req.BotName,
		BotLogoURL:  req.BotLogoURL,
		Description: req.Description,
		Status:      model.OrderStatusPending,
	}

	var err error
	if user.Role == model.RoleCustomer {
		err = s.orderRepo.CreateWithinQuota(ctx, order, MonthlyOrderQuota)
		if errors.Is(err, repository.ErrMonthlyQuotaExceeded) {
			return nil, ErrQuotaExceeded
		}
	} else {
		err = s.orderRepo.Create(ctx, order)
	}
	if err != nil {
		return nil, err
	}

	return toOrderInfo(order, false), nil
}

// List 订单列表
// customer 只看自己的；团队角色看全部（含所有者信息）
func (s *OrderService) List(ctx context.Context, user *model.User) ([]*dto.OrderInfo, error) {
	if !user.Role.CanViewAllOrders() {
		orders, err := s.orderRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return toOrderInfoList(orders, false), nil
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderInfoList(orders, true), nil
}

// Get 订单详情
// customer 访问他人订单返回 Forbidden（订单存在性此时已无泄露可言），不存在返回 NotFound
func (s *OrderService) Get(ctx context.Context, user *model.User, orderID int64) (*dto.OrderInfo, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !user.Role.CanViewAllOrders() && order.UserID != user.ID {
		return nil, ErrForbidden
	}

	return toOrderInfo(order, user.Role.IsTeam()), nil
}

// UpdateStatus 更新订单状态/备注（团队角色）
// 终态订单不可再流转，非法流转直接拒绝
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, req *dto.UpdateOrderStatusRequest) (*dto.OrderInfo, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// 状态不变时只更新备注
	if req.Status != order.Status && !order.CanTransitionTo(req.Status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status, req.Notes); err != nil {
		return nil, err
	}

	order.Status = req.Status
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	return toOrderInfo(order, true), nil
}

// Stats 当前用户订单统计
func (s *OrderService) Stats(ctx context.Context, userID int64) (*repository.OrderStats, error) {
	return s.orderRepo.StatsForUser(ctx, userID)
}

// ==================== 辅助方法 ====================

// toOrderInfo 转换为 DTO
// withOwner 为 true 时附带所有者摘要（团队视角）
func toOrderInfo(order *model.Order, withOwner bool) *dto.OrderInfo {
	info := &dto.OrderInfo{
		ID:          order.ID,
		UserID:      order.UserID,
		DiscordName: order.DiscordName,
		BotName:     order.BotName,
		BotLogoURL:  order.BotLogoURL,
		Description: order.Description,
		Status:      order.Status,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	// 所有者可能已被删除（订单不级联），User 为 nil 时跳过
	if withOwner && order.User != nil {
		info.Owner = &dto.OrderUser{
			ID:        order.User.ID,
			Email:     order.User.Email,
			FirstName: order.User.FirstName,
			LastName:  order.User.LastName,
		}
	}
	return info
}

func toOrderInfoList(orders []model.Order, withOwner bool) []*dto.OrderInfo {
	list := make([]*dto.OrderInfo, len(orders))
	for i := range orders {
		list[i] = toOrderInfo(&orders[i], withOwner)
	}
	return list
}
