package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
	"novarix_studio_v1/pkg/utils"
)

// tempPasswordLength 临时密码长度
const tempPasswordLength = 12

// ==================== UserService 用户/团队管理服务 ====================

// UserService 用户/团队管理服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ProvisionMember 添加团队成员
// admin 只能添加 dev；临时密码仅此一次明文返回，库里只存哈希
func (s *UserService) ProvisionMember(ctx context.Context, actor *model.User, req *dto.AddTeamMemberRequest) (*dto.AddTeamMemberResponse, error) {
	role := model.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !actor.Role.CanProvision(role) {
		return nil, ErrForbidden
	}

	email := normalizeEmail(req.Email)
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	tempPassword, err := utils.GenerateRandomString(tempPasswordLength)
	if err != nil {
		return nil, err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
		Notes:    req.Notes,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &dto.AddTeamMemberResponse{
		User:         ToUserInfo(user),
		TempPassword: tempPassword,
	}, nil
}

// UpdateNotes 更新用户备注（admin/owner）
func (s *UserService) UpdateNotes(ctx context.Context, userID int64, notes string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateNotes(ctx, userID, notes)
}

// SetBlacklist 更新拉黑状态（admin/owner），不能拉黑自己
func (s *UserService) SetBlacklist(ctx context.Context, actor *model.User, userID int64, blacklisted bool) error {
	if userID == actor.ID {
		return ErrSelfAction
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.UpdateBlacklist(ctx, userID, blacklisted)
}

// SetRole 修改用户角色（仅 owner），不能改自己的角色
func (s *UserService) SetRole(ctx context.Context, actor *model.User, userID int64, role model.Role) error {
	if userID == actor.ID {
		return ErrSelfAction
	}
	if !role.IsValid() {
		return ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.UpdateRole(ctx, userID, role)
}

// Delete 删除用户（仅 owner），不能删除自己
// 订单不级联删除，保留 user_id 引用
func (s *UserService) Delete(ctx context.Context, actor *model.User, userID int64) error {
	if userID == actor.ID {
		return ErrSelfAction
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, userID)
}

// ListAll 全部用户，按创建时间倒序
func (s *UserService) ListAll(ctx context.Context) ([]*dto.UserInfo, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toUserInfoList(users), nil
}

// ListTeamMembers 团队成员，按创建时间倒序
func (s *UserService) ListTeamMembers(ctx context.Context) ([]*dto.UserInfo, error) {
	users, err := s.userRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	return toUserInfoList(users), nil
}

// ==================== 辅助方法 ====================

func toUserInfoList(users []model.User) []*dto.UserInfo {
	list := make([]*dto.UserInfo, len(users))
	for i := range users {
		list[i] = ToUserInfo(&users[i])
	}
	return list
}
