package model

import "testing"

// ==================== 订单状态流转测试 ====================

func TestOrder_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{OrderStatusPending, OrderStatusInProgress, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusPending, false},
		// 终态不可再流转
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusInProgress, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, c := range cases {
		order := &Order{Status: c.from}
		if got := order.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s → %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestOrder_IsTerminal(t *testing.T) {
	cases := map[string]bool{
		OrderStatusPending:    false,
		OrderStatusInProgress: false,
		OrderStatusCompleted:  true,
		OrderStatusCancelled:  true,
	}

	for status, want := range cases {
		order := &Order{Status: status}
		if got := order.IsTerminal(); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled} {
		if !IsValidOrderStatus(status) {
			t.Errorf("IsValidOrderStatus(%s) = false, want true", status)
		}
	}
	if IsValidOrderStatus("archived") {
		t.Error("archived 不应是合法状态")
	}
}
