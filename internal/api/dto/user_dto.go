package dto

// ==================== 团队成员添加 ====================

// AddTeamMemberRequest 添加团队成员请求
// admin 只能添加 dev，owner 可添加 dev/admin/owner（service 层校验）
type AddTeamMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=dev admin owner"`
	Notes string `json:"notes" binding:"omitempty"`
}

// AddTeamMemberResponse 添加团队成员响应
// TempPassword 仅此一次明文返回，不会持久化
type AddTeamMemberResponse struct {
	User         *UserInfo `json:"user"`
	TempPassword string    `json:"temp_password"`
}

// ==================== 用户维护 ====================

// UpdateUserNotesRequest 更新用户备注请求
type UpdateUserNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateUserBlacklistRequest 更新拉黑状态请求
type UpdateUserBlacklistRequest struct {
	Blacklisted *bool `json:"blacklisted" binding:"required"`
}

// UpdateUserRoleRequest 更新角色请求
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer dev admin owner"`
}
