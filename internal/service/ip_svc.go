package service

import (
	"context"

	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== IPBlacklistService IP 黑名单服务 ====================

// IPBlacklistService IP 黑名单服务（仅 owner）
type IPBlacklistService struct {
	ipRepo repository.IPBlacklistRepository
}

// NewIPBlacklistService 创建 IP 黑名单服务
func NewIPBlacklistService(ipRepo repository.IPBlacklistRepository) *IPBlacklistService {
	return &IPBlacklistService{ipRepo: ipRepo}
}

// Add 加入黑名单，重复加入幂等
func (s *IPBlacklistService) Add(ctx context.Context, ip string) error {
	return s.ipRepo.Add(ctx, ip)
}

// Remove 移出黑名单
func (s *IPBlacklistService) Remove(ctx context.Context, ip string) error {
	return s.ipRepo.Remove(ctx, ip)
}

// ListAll 全部黑名单 IP
func (s *IPBlacklistService) ListAll(ctx context.Context) ([]model.IPBlacklist, error) {
	return s.ipRepo.ListAll(ctx)
}
