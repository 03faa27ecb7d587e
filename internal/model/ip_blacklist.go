package model

// IPBlacklist 被封禁的客户端 IP
// 命中后请求在进入路由前被直接拒绝
type IPBlacklist struct {
	BaseModel
	IP string `gorm:"size:64;uniqueIndex;not null" json:"ip"`
}

func (IPBlacklist) TableName() string {
	return "ip_blacklist"
}
