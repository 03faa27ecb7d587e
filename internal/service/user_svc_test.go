package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== 测试辅助 ====================

func setupUserSvcTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

func newUserService(t *testing.T) (*UserService, repository.UserRepository) {
	repo := repository.NewUserRepository(setupUserSvcTestDB(t))
	return NewUserService(repo), repo
}

func seedUser(t *testing.T, repo repository.UserRepository, email string, role model.Role) *model.User {
	user := &model.User{Email: email, Password: "hash", Role: role}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

// ==================== 单元测试 ====================

func TestUserService_ProvisionMember(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()
	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)

	resp, err := svc.ProvisionMember(ctx, owner, &dto.AddTeamMemberRequest{
		Email: "newdev@example.com",
		Role:  "dev",
	})
	if err != nil {
		t.Fatalf("添加成员失败: %v", err)
	}

	if resp.User.Role != "dev" {
		t.Errorf("role = %s, want dev", resp.User.Role)
	}
	if len(resp.TempPassword) != tempPasswordLength {
		t.Errorf("临时密码长度 = %d, want %d", len(resp.TempPassword), tempPasswordLength)
	}

	// 库里只存哈希，临时密码可以登录
	created, _ := repo.GetByEmail(ctx, "newdev@example.com")
	if created.Password == resp.TempPassword {
		t.Error("临时密码不应明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(resp.TempPassword)); err != nil {
		t.Errorf("临时密码哈希校验失败: %v", err)
	}
}

func TestUserService_ProvisionMember_RoleMatrix(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()
	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)
	admin := seedUser(t, repo, "admin@example.com", model.RoleAdmin)

	cases := []struct {
		name    string
		actor   *model.User
		role    string
		wantErr error
	}{
		{"owner 添加 admin", owner, "admin", nil},
		{"owner 添加 owner", owner, "owner", nil},
		{"admin 添加 dev", admin, "dev", nil},
		{"admin 添加 admin", admin, "admin", ErrForbidden},
		{"admin 添加 owner", admin, "owner", ErrForbidden},
	}

	for i, c := range cases {
		req := &dto.AddTeamMemberRequest{
			Email: "member" + string(rune('a'+i)) + "@example.com",
			Role:  c.role,
		}
		_, err := svc.ProvisionMember(ctx, c.actor, req)
		if c.wantErr == nil && err != nil {
			t.Errorf("%s: err = %v, want nil", c.name, err)
		}
		if c.wantErr != nil && !errors.Is(err, c.wantErr) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.wantErr)
		}
	}
}

func TestUserService_ProvisionMember_DuplicateEmail(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()
	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)
	seedUser(t, repo, "taken@example.com", model.RoleCustomer)

	_, err := svc.ProvisionMember(ctx, owner, &dto.AddTeamMemberRequest{
		Email: "taken@example.com",
		Role:  "dev",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestUserService_SelfActionGuards(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()
	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)

	// 不能拉黑 / 改角色 / 删除自己
	if err := svc.SetBlacklist(ctx, owner, owner.ID, true); !errors.Is(err, ErrSelfAction) {
		t.Errorf("自我拉黑: err = %v, want ErrSelfAction", err)
	}
	if err := svc.SetRole(ctx, owner, owner.ID, model.RoleDev); !errors.Is(err, ErrSelfAction) {
		t.Errorf("自改角色: err = %v, want ErrSelfAction", err)
	}
	if err := svc.Delete(ctx, owner, owner.ID); !errors.Is(err, ErrSelfAction) {
		t.Errorf("自我删除: err = %v, want ErrSelfAction", err)
	}
}

func TestUserService_SetRole(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()
	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)
	target := seedUser(t, repo, "target@example.com", model.RoleCustomer)

	if err := svc.SetRole(ctx, owner, target.ID, model.RoleDev); err != nil {
		t.Fatalf("改角色失败: %v", err)
	}
	updated, _ := repo.GetByID(ctx, target.ID)
	if updated.Role != model.RoleDev {
		t.Errorf("role = %s, want dev", updated.Role)
	}

	// 非法角色值
	if err := svc.SetRole(ctx, owner, target.ID, model.Role("superuser")); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}

	// 目标不存在
	if err := svc.SetRole(ctx, owner, 999, model.RoleDev); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserService_Delete_KeepsOrders(t *testing.T) {
	db := setupUserSvcTestDB(t)
	if err := db.AutoMigrate(&model.Order{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	repo := repository.NewUserRepository(db)
	svc := NewUserService(repo)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@example.com", model.RoleOwner)
	customer := seedUser(t, repo, "customer@example.com", model.RoleCustomer)

	db.Create(&model.Order{
		UserID:      customer.ID,
		DiscordName: "tester#0001",
		BotName:     "Bot",
		Description: "描述",
		Status:      model.OrderStatusPending,
	})

	if err := svc.Delete(ctx, owner, customer.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 订单不级联删除
	var count int64
	db.Model(&model.Order{}).Where("user_id = ?", customer.ID).Count(&count)
	if count != 1 {
		t.Errorf("订单数 = %d, want 1", count)
	}
}
