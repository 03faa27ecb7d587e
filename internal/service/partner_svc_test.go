package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== 测试辅助 ====================

func newPartnerService(t *testing.T) *PartnerService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Partner{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return NewPartnerService(repository.NewPartnerRepository(db))
}

// ==================== 单元测试 ====================

func TestPartnerService_Create(t *testing.T) {
	svc := newPartnerService(t)
	ctx := context.Background()

	partner, err := svc.Create(ctx, &dto.CreatePartnerRequest{
		Name:    "Acme Bots",
		Website: "https://acme.example.com",
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 缺省启用
	if !partner.IsActive {
		t.Error("is_active = false, want true")
	}
	if partner.Verified {
		t.Error("verified 缺省应为 false")
	}
}

func TestPartnerService_Create_Inactive(t *testing.T) {
	svc := newPartnerService(t)
	ctx := context.Background()

	// 显式 is_active=false 必须落库为 false，不能被数据库默认值覆盖
	inactive := false
	partner, err := svc.Create(ctx, &dto.CreatePartnerRequest{
		Name:     "Dormant",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if partner.IsActive {
		t.Error("is_active = true, want false")
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(all) != 1 || all[0].IsActive {
		t.Error("落库后的 is_active 应为 false")
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("停用伙伴不应出现在公开列表, len = %d", len(active))
	}
}

func TestPartnerService_ListActive(t *testing.T) {
	svc := newPartnerService(t)
	ctx := context.Background()

	inactive := false
	svc.Create(ctx, &dto.CreatePartnerRequest{Name: "Active One"})
	svc.Create(ctx, &dto.CreatePartnerRequest{Name: "Hidden One", IsActive: &inactive})

	// 公开列表只含启用中的
	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("len = %d, want 1", len(active))
	}
	if active[0].Name != "Active One" {
		t.Errorf("name = %s, want Active One", active[0].Name)
	}

	// 管理端列表含全部
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}
}

func TestPartnerService_Update_PartialFields(t *testing.T) {
	svc := newPartnerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreatePartnerRequest{
		Name:        "Original",
		Description: "原始描述",
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 只更新出现的字段，未出现的保持原值
	verified := true
	newName := "Renamed"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdatePartnerRequest{
		Name:     &newName,
		Verified: &verified,
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name = %s, want Renamed", updated.Name)
	}
	if !updated.Verified {
		t.Error("verified = false, want true")
	}
	if updated.Description != "原始描述" {
		t.Errorf("description = %s, 不应被覆盖", updated.Description)
	}
}

func TestPartnerService_Delete(t *testing.T) {
	svc := newPartnerService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreatePartnerRequest{Name: "ToDelete"})
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrPartnerNotFound) {
		t.Errorf("err = %v, want ErrPartnerNotFound", err)
	}
}
