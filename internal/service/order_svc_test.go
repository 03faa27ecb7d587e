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

func setupOrderSvcTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Order{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := setupOrderSvcTestDB(t)
	return NewOrderService(repository.NewOrderRepository(db)), db
}

func newCreateOrderReq() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		DiscordName: "tester#0001",
		BotName:     "TestBot",
		Description: "一个用于测试的机器人需求描述，长度需要超过五十个字符才能通过校验，因此这里写得长一些，再补充几句确保字数充足。",
	}
}

// ==================== 单元测试 ====================

func TestOrderService_Create_CustomerQuota(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	customer := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleCustomer}

	for i := 0; i < MonthlyOrderQuota; i++ {
		if _, err := svc.Create(ctx, customer, newCreateOrderReq()); err != nil {
			t.Fatalf("第 %d 单创建失败: %v", i+1, err)
		}
	}

	_, err := svc.Create(ctx, customer, newCreateOrderReq())
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestOrderService_Create_TeamUnlimited(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	dev := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleDev}

	// 团队角色不受配额限制
	for i := 0; i < MonthlyOrderQuota+2; i++ {
		if _, err := svc.Create(ctx, dev, newCreateOrderReq()); err != nil {
			t.Fatalf("第 %d 单创建失败: %v", i+1, err)
		}
	}
}

func TestOrderService_Get_AccessControl(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	ownerOfOrder := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleCustomer}
	stranger := &model.User{BaseModel: model.BaseModel{ID: 2}, Role: model.RoleCustomer}
	dev := &model.User{BaseModel: model.BaseModel{ID: 3}, Role: model.RoleDev}

	created, err := svc.Create(ctx, ownerOfOrder, newCreateOrderReq())
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 所有者可见
	if _, err := svc.Get(ctx, ownerOfOrder, created.ID); err != nil {
		t.Errorf("所有者访问失败: %v", err)
	}

	// 其他 customer 禁止访问
	if _, err := svc.Get(ctx, stranger, created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	// 团队角色可见任意订单
	if _, err := svc.Get(ctx, dev, created.ID); err != nil {
		t.Errorf("团队访问失败: %v", err)
	}

	// 不存在的订单
	if _, err := svc.Get(ctx, dev, 999); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderService_List(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	alice := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleCustomer}
	bob := &model.User{BaseModel: model.BaseModel{ID: 2}, Role: model.RoleCustomer}
	dev := &model.User{BaseModel: model.BaseModel{ID: 3}, Role: model.RoleDev}

	svc.Create(ctx, alice, newCreateOrderReq())
	svc.Create(ctx, alice, newCreateOrderReq())
	svc.Create(ctx, bob, newCreateOrderReq())

	// customer 只看自己的
	mine, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("len = %d, want 2", len(mine))
	}

	// 团队看全部
	all, err := svc.List(ctx, dev)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	customer := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleCustomer}

	created, err := svc.Create(ctx, customer, newCreateOrderReq())
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// pending → completed 非法
	_, err = svc.UpdateStatus(ctx, created.ID, &dto.UpdateOrderStatusRequest{Status: model.OrderStatusCompleted})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}

	// pending → in_progress 合法
	updated, err := svc.UpdateStatus(ctx, created.ID, &dto.UpdateOrderStatusRequest{Status: model.OrderStatusInProgress})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Status != model.OrderStatusInProgress {
		t.Errorf("status = %s, want in_progress", updated.Status)
	}

	// 状态不变时仅更新备注
	notes := "进度 50%"
	updated, err = svc.UpdateStatus(ctx, created.ID, &dto.UpdateOrderStatusRequest{
		Status: model.OrderStatusInProgress,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("备注更新失败: %v", err)
	}
	if updated.Notes != notes {
		t.Errorf("notes = %s, want %s", updated.Notes, notes)
	}

	// in_progress → completed 合法，终态后一切流转被拒
	if _, err := svc.UpdateStatus(ctx, created.ID, &dto.UpdateOrderStatusRequest{Status: model.OrderStatusCompleted}); err != nil {
		t.Fatalf("完成失败: %v", err)
	}
	_, err = svc.UpdateStatus(ctx, created.ID, &dto.UpdateOrderStatusRequest{Status: model.OrderStatusCancelled})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("终态流转: err = %v, want ErrInvalidTransition", err)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.UpdateStatus(context.Background(), 999, &dto.UpdateOrderStatusRequest{Status: model.OrderStatusInProgress})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}
