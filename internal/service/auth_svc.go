package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== AuthService 认证服务 ====================

// AuthService 认证服务
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 自助注册，角色固定为 customer
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)

	// 先查一次给出友好错误；并发窗口由 email 唯一索引兜底
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     email,
		Password:  string(hashedPassword),
		Role:      model.RoleCustomer,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login 登录
// 邮箱不存在与密码错误返回同一个错误，避免账号枚举
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Blacklisted {
		return nil, ErrAccountSuspended
	}

	return user, nil
}

// ==================== 辅助方法 ====================

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserInfo 转换为 DTO
func ToUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Notes:       user.Notes,
		Blacklisted: user.Blacklisted,
		CreatedAt:   user.CreatedAt,
	}
}
