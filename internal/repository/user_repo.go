package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"novarix_studio_v1/internal/model"
)

// ==================== UserRepository 用户仓库 ====================

// UserRepository 用户仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateNotes(ctx context.Context, id int64, notes string) error
	UpdateBlacklist(ctx context.Context, id int64, blacklisted bool) error
	UpdateRole(ctx context.Context, id int64, role model.Role) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]model.User, error)
	ListTeamMembers(ctx context.Context) ([]model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ==================== 实现 ====================

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
// email 上有唯一索引，并发重复注册会得到 gorm.ErrDuplicatedKey
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID 根据 ID 获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// UpdateNotes 更新团队备注
func (r *userRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("notes", notes).Error
}

// UpdateBlacklist 更新拉黑状态
func (r *userRepository) UpdateBlacklist(ctx context.Context, id int64, blacklisted bool) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("blacklisted", blacklisted).Error
}

// UpdateRole 更新角色
func (r *userRepository) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// Delete 删除用户（物理删除，订单保留不级联）
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// ListAll 全部用户，按创建时间倒序
func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// ListTeamMembers 团队成员 (dev/admin/owner)，按创建时间倒序
func (r *userRepository) ListTeamMembers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []model.Role{model.RoleDev, model.RoleAdmin, model.RoleOwner}).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// ExistsByEmail 检查邮箱是否存在
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
