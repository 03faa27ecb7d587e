package dto

import "time"

// ==================== 合作伙伴 ====================

// CreatePartnerRequest 创建合作伙伴请求
type CreatePartnerRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"omitempty"`
	Website      string `json:"website" binding:"omitempty,url"`
	Logo         string `json:"logo" binding:"omitempty"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	IsActive     *bool  `json:"is_active"`
}

// UpdatePartnerRequest 更新合作伙伴请求，全部字段可选
type UpdatePartnerRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	Website      *string `json:"website" binding:"omitempty,url"`
	Logo         *string `json:"logo"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	IsActive     *bool   `json:"is_active"`
	Verified     *bool   `json:"verified"`
}

// PartnerInfo 合作伙伴信息
type PartnerInfo struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Website      string    `json:"website,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	IsActive     bool      `json:"is_active"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ==================== IP 黑名单 ====================

// AddIPRequest 加入 IP 黑名单请求
type AddIPRequest struct {
	IP string `json:"ip" binding:"required,ip"`
}

// ==================== Logo 上传 ====================

// UploadLogoRequest Logo 上传请求 (base64)
type UploadLogoRequest struct {
	Data string `json:"data" binding:"required"` // data URI 或纯 base64
}

// UploadLogoResponse Logo 上传响应
type UploadLogoResponse struct {
	URL string `json:"url"`
}
