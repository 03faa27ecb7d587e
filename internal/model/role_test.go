package model

import "testing"

// ==================== 角色权限测试 ====================

func TestRole_IsValid(t *testing.T) {
	for _, r := range AllRoles {
		if !r.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", r)
		}
	}
	if Role("superuser").IsValid() {
		t.Error("superuser 不应是合法角色")
	}
	if Role("").IsValid() {
		t.Error("空角色不应合法")
	}
}

func TestRole_Permissions(t *testing.T) {
	cases := []struct {
		role            Role
		isTeam          bool
		canViewAll      bool
		canUpdateOrders bool
		canManageUsers  bool
		canChangeRoles  bool
		canPartners     bool
	}{
		{RoleCustomer, false, false, false, false, false, false},
		{RoleDev, true, true, true, false, false, false},
		{RoleAdmin, true, true, true, true, false, false},
		{RoleOwner, true, true, true, true, true, true},
	}

	for _, c := range cases {
		if got := c.role.IsTeam(); got != c.isTeam {
			t.Errorf("%s.IsTeam() = %v, want %v", c.role, got, c.isTeam)
		}
		if got := c.role.CanViewAllOrders(); got != c.canViewAll {
			t.Errorf("%s.CanViewAllOrders() = %v, want %v", c.role, got, c.canViewAll)
		}
		if got := c.role.CanUpdateOrders(); got != c.canUpdateOrders {
			t.Errorf("%s.CanUpdateOrders() = %v, want %v", c.role, got, c.canUpdateOrders)
		}
		if got := c.role.CanManageUsers(); got != c.canManageUsers {
			t.Errorf("%s.CanManageUsers() = %v, want %v", c.role, got, c.canManageUsers)
		}
		if got := c.role.CanChangeRoles(); got != c.canChangeRoles {
			t.Errorf("%s.CanChangeRoles() = %v, want %v", c.role, got, c.canChangeRoles)
		}
		if got := c.role.CanManagePartners(); got != c.canPartners {
			t.Errorf("%s.CanManagePartners() = %v, want %v", c.role, got, c.canPartners)
		}
	}
}

func TestRole_CanProvision(t *testing.T) {
	cases := []struct {
		actor  Role
		target Role
		want   bool
	}{
		// owner 可以添加任意团队角色，但不能添加 customer
		{RoleOwner, RoleDev, true},
		{RoleOwner, RoleAdmin, true},
		{RoleOwner, RoleOwner, true},
		{RoleOwner, RoleCustomer, false},
		// admin 只能添加 dev
		{RoleAdmin, RoleDev, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleOwner, false},
		{RoleAdmin, RoleCustomer, false},
		// dev / customer 不能添加任何人
		{RoleDev, RoleDev, false},
		{RoleCustomer, RoleDev, false},
	}

	for _, c := range cases {
		if got := c.actor.CanProvision(c.target); got != c.want {
			t.Errorf("%s.CanProvision(%s) = %v, want %v", c.actor, c.target, got, c.want)
		}
	}
}
