package model

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusPending    = "pending"     // 待处理
	OrderStatusInProgress = "in_progress" // 开发中
	OrderStatusCompleted  = "completed"   // 已完成（终态）
	OrderStatusCancelled  = "cancelled"   // 已取消（终态）
)

// IsValidOrderStatus 是否为合法订单状态值
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ==================== Order 订单 ====================

// Order 机器人开发订单
// 订单永不物理删除，只会流转到 cancelled
type Order struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`

	DiscordName string `gorm:"size:100;not null" json:"discord_name"`
	BotName     string `gorm:"size:100;not null" json:"bot_name"`
	BotLogoURL  string `gorm:"type:text" json:"bot_logo_url,omitempty"`

	// 需求描述，创建时至少 50 字符
	Description string `gorm:"type:text;not null" json:"description"`

	Status string `gorm:"size:20;index;not null;default:pending" json:"status"`

	// 团队备注，订单所有者只读可见
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// IsTerminal 是否处于终态
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}

// CanTransitionTo 检查状态流转是否合法
// pending → in_progress → completed；非终态均可 → cancelled
func (o *Order) CanTransitionTo(target string) bool {
	switch o.Status {
	case OrderStatusPending:
		return target == OrderStatusInProgress || target == OrderStatusCancelled
	case OrderStatusInProgress:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted, OrderStatusCancelled:
		return false
	}
	return false
}
