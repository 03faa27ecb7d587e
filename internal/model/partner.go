package model

// Partner 合作伙伴展示位
type Partner struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	Website      string `gorm:"type:text" json:"website,omitempty"`
	Logo         string `gorm:"type:text" json:"logo,omitempty"`
	ContactEmail string `gorm:"size:255" json:"contact_email,omitempty"`

	// 仅 IsActive 的伙伴出现在公开列表
	// 不带 default 标签：带 default 时 GORM 会在 INSERT 里跳过零值字段，
	// is_active=false 的创建会被数据库默认值覆盖成 true
	IsActive bool `gorm:"not null" json:"is_active"`
	Verified bool `gorm:"not null" json:"verified"`
}

func (Partner) TableName() string {
	return "partners"
}
