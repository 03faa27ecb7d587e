package dto

import "time"

// ==================== 订单创建 ====================

// CreateOrderRequest 创建订单请求
// 需求描述至少 50 字符
type CreateOrderRequest struct {
	DiscordName string `json:"discord_name" binding:"required,max=100"`
	BotName     string `json:"bot_name" binding:"required,max=100"`
	BotLogoURL  string `json:"bot_logo_url" binding:"omitempty,url"`
	Description string `json:"description" binding:"required,min=50"`
}

// ==================== 订单状态更新 ====================

// UpdateOrderStatusRequest 更新订单状态请求（团队角色）
// notes 缺省时保持原值
type UpdateOrderStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
	Notes  *string `json:"notes"`
}

// ==================== 订单信息 ====================

// OrderInfo 订单信息
// Owner 仅团队视角的列表/详情填充
type OrderInfo struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	DiscordName string     `json:"discord_name"`
	BotName     string     `json:"bot_name"`
	BotLogoURL  string     `json:"bot_logo_url,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Owner       *OrderUser `json:"user,omitempty"`
}

// OrderUser 订单所有者摘要
type OrderUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
