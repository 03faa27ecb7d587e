package model

// Role 系统角色
// 权限从低到高：customer < dev < admin < owner
type Role string

const (
	RoleCustomer Role = "customer" // 客户：提交订单
	RoleDev      Role = "dev"      // 开发：处理订单
	RoleAdmin    Role = "admin"    // 管理员：用户管理
	RoleOwner    Role = "owner"    // 所有者：全部权限
)

// AllRoles 全部合法角色
var AllRoles = []Role{RoleCustomer, RoleDev, RoleAdmin, RoleOwner}

// IsValid 是否为合法角色值
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDev, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// IsTeam 是否为团队角色 (dev/admin/owner)
func (r Role) IsTeam() bool {
	switch r {
	case RoleDev, RoleAdmin, RoleOwner:
		return true
	case RoleCustomer:
		return false
	}
	return false
}

// ==================== 权限判定 ====================
// 权限只看角色，不做资源级 ACL（"不可对自己操作"的守卫在 service 层单独处理）

// CanViewAllOrders 是否可以查看全部订单
func (r Role) CanViewAllOrders() bool {
	return r.IsTeam()
}

// CanUpdateOrders 是否可以修改订单状态/备注
func (r Role) CanUpdateOrders() bool {
	return r.IsTeam()
}

// CanManageUsers 是否可以管理用户 (备注/拉黑/添加团队成员)
func (r Role) CanManageUsers() bool {
	switch r {
	case RoleAdmin, RoleOwner:
		return true
	case RoleCustomer, RoleDev:
		return false
	}
	return false
}

// CanChangeRoles 是否可以修改他人角色、删除用户
func (r Role) CanChangeRoles() bool {
	return r == RoleOwner
}

// CanManagePartners 是否可以管理合作伙伴 (CRUD)
func (r Role) CanManagePartners() bool {
	return r == RoleOwner
}

// CanProvision 是否允许把新团队成员提升到 target 角色
// admin 只能添加 dev；owner 可以添加 dev/admin/owner
func (r Role) CanProvision(target Role) bool {
	switch r {
	case RoleOwner:
		return target.IsTeam()
	case RoleAdmin:
		return target == RoleDev
	case RoleCustomer, RoleDev:
		return false
	}
	return false
}
