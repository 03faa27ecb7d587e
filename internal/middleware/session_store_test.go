package middleware

import (
	"testing"
	"time"
)

// ==================== 会话存储测试 ====================

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sid := store.Create(42)
	if sid == "" {
		t.Fatal("会话 ID 不应为空")
	}

	userID, ok := store.Get(sid)
	if !ok {
		t.Fatal("会话应存在")
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}

	// 每次创建的 sid 都不同
	if other := store.Create(42); other == sid {
		t.Error("会话 ID 不应重复")
	}
}

func TestSessionStore_Destroy(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sid := store.Create(1)
	store.Destroy(sid)

	if _, ok := store.Get(sid); ok {
		t.Error("销毁后的会话不应存在")
	}

	// 重复销毁幂等
	store.Destroy(sid)
}

func TestSessionStore_Expiry(t *testing.T) {
	// 负 TTL 使会话立即过期
	store := NewSessionStore(-time.Second)

	sid := store.Create(1)
	if _, ok := store.Get(sid); ok {
		t.Error("过期会话不应命中")
	}
}

func TestSessionStore_Prune(t *testing.T) {
	expired := NewSessionStore(-time.Second)
	expired.Create(1)
	expired.Create(2)

	if pruned := expired.Prune(); pruned != 2 {
		t.Errorf("pruned = %d, want 2", pruned)
	}

	// 未过期的不被清理
	alive := NewSessionStore(time.Hour)
	sid := alive.Create(1)
	if pruned := alive.Prune(); pruned != 0 {
		t.Errorf("pruned = %d, want 0", pruned)
	}
	if _, ok := alive.Get(sid); !ok {
		t.Error("有效会话不应被清理")
	}
}
