package model

// User 用户/团队成员账号
type User struct {
	BaseModel
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // 哈希密码，永不下发

	// 角色: customer (客户), dev (开发), admin (管理员), owner (所有者)
	Role Role `gorm:"size:20;not null;default:'customer'" json:"role"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`

	// 团队内部备注，客户不可见
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	// 拉黑后无法登录，已有会话在下次请求时被销毁
	Blacklisted bool `gorm:"default:false" json:"blacklisted"`

	// 关联
	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
