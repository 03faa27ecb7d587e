package service

import (
	"context"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== PartnerService 合作伙伴服务 ====================

// PartnerService 合作伙伴服务
type PartnerService struct {
	partnerRepo repository.PartnerRepository
}

// NewPartnerService 创建合作伙伴服务
func NewPartnerService(partnerRepo repository.PartnerRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo}
}

// Create 创建合作伙伴（仅 owner）
func (s *PartnerService) Create(ctx context.Context, req *dto.CreatePartnerRequest) (*dto.PartnerInfo, error) {
	partner := &model.Partner{
		Name:         req.Name,
		Description:  req.Description,
		Website:      req.Website,
		Logo:         req.Logo,
		ContactEmail: req.ContactEmail,
		IsActive:     true,
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerInfo(partner), nil
}

// Update 更新合作伙伴，仅更新请求里出现的字段
func (s *PartnerService) Update(ctx context.Context, partnerID int64, req *dto.UpdatePartnerRequest) (*dto.PartnerInfo, error) {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Description != nil {
		partner.Description = *req.Description
	}
	if req.Website != nil {
		partner.Website = *req.Website
	}
	if req.Logo != nil {
		partner.Logo = *req.Logo
	}
	if req.ContactEmail != nil {
		partner.ContactEmail = *req.ContactEmail
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}
	if req.Verified != nil {
		partner.Verified = *req.Verified
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerInfo(partner), nil
}

// Delete 删除合作伙伴
func (s *PartnerService) Delete(ctx context.Context, partnerID int64) error {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return err
	}
	if partner == nil {
		return ErrPartnerNotFound
	}
	return s.partnerRepo.Delete(ctx, partnerID)
}

// ListAll 全部合作伙伴（管理端）
func (s *PartnerService) ListAll(ctx context.Context) ([]*dto.PartnerInfo, error) {
	partners, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPartnerInfoList(partners), nil
}

// ListActive 启用中的合作伙伴（公开，无需登录）
func (s *PartnerService) ListActive(ctx context.Context) ([]*dto.PartnerInfo, error) {
	partners, err := s.partnerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toPartnerInfoList(partners), nil
}

// ==================== 辅助方法 ====================

// toPartnerInfo 转换为 DTO
func toPartnerInfo(partner *model.Partner) *dto.PartnerInfo {
	return &dto.PartnerInfo{
		ID:           partner.ID,
		Name:         partner.Name,
		Description:  partner.Description,
		Website:      partner.Website,
		Logo:         partner.Logo,
		ContactEmail: partner.ContactEmail,
		IsActive:     partner.IsActive,
		Verified:     partner.Verified,
		CreatedAt:    partner.CreatedAt,
		UpdatedAt:    partner.UpdatedAt,
	}
}

func toPartnerInfoList(partners []model.Partner) []*dto.PartnerInfo {
	list := make([]*dto.PartnerInfo, len(partners))
	for i := range partners {
		list[i] = toPartnerInfo(&partners[i])
	}
	return list
}
