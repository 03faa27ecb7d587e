package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/middleware"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/service"
)

// ==================== UserController 用户/团队管理控制器 ====================

// UserController 用户/团队管理控制器
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// parseUserID 解析路径里的用户 ID
func parseUserID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的用户 ID",
		})
		return 0, false
	}
	return id, true
}

// ListAll 全部用户（团队可见）
// @Summary 全部用户
// @Tags User
// @Produce json
// @Success 200 {array} dto.UserInfo
// @Failure 403 {object} map[string]interface{}
// @Router /users [get]
func (c *UserController) ListAll(ctx *gin.Context) {
	users, err := c.userService.ListAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": users,
	})
}

// ListTeam 团队成员列表
// @Summary 团队成员列表
// @Tags User
// @Produce json
// @Success 200 {array} dto.UserInfo
// @Failure 403 {object} map[string]interface{}
// @Router /team [get]
func (c *UserController) ListTeam(ctx *gin.Context) {
	users, err := c.userService.ListTeamMembers(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": users,
	})
}

// Provision 添加团队成员
// @Summary 添加团队成员
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.AddTeamMemberRequest true "成员信息"
// @Success 200 {object} dto.AddTeamMemberResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /users [post]
func (c *UserController) Provision(ctx *gin.Context) {
	var req dto.AddTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	actor := middleware.GetCurrentUser(ctx)

	resp, err := c.userService.ProvisionMember(ctx.Request.Context(), actor, &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成员已创建，临时密码仅此一次返回",
		"data":    resp,
	})
}

// UpdateNotes 更新用户备注
// @Summary 更新用户备注
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body dto.UpdateUserNotesRequest true "备注"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/notes [patch]
func (c *UserController) UpdateNotes(ctx *gin.Context) {
	id, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := c.userService.UpdateNotes(ctx.Request.Context(), id, req.Notes); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "备注已更新",
	})
}

// UpdateBlacklist 更新拉黑状态
// @Summary 拉黑/解除拉黑用户
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body dto.UpdateUserBlacklistRequest true "拉黑标记"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/blacklist [patch]
func (c *UserController) UpdateBlacklist(ctx *gin.Context) {
	id, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserBlacklistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	actor := middleware.GetCurrentUser(ctx)

	if err := c.userService.SetBlacklist(ctx.Request.Context(), actor, id, *req.Blacklisted); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "拉黑状态已更新",
	})
}

// UpdateRole 修改用户角色（仅 owner）
// @Summary 修改用户角色
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body dto.UpdateUserRoleRequest true "新角色"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/role [patch]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	id, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	actor := middleware.GetCurrentUser(ctx)

	if err := c.userService.SetRole(ctx.Request.Context(), actor, id, model.Role(req.Role)); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "角色已更新",
	})
}

// Delete 删除用户（仅 owner）
// @Summary 删除用户
// @Tags User
// @Produce json
// @Param id path int true "用户 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := parseUserID(ctx)
	if !ok {
		return
	}

	actor := middleware.GetCurrentUser(ctx)

	if err := c.userService.Delete(ctx.Request.Context(), actor, id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "用户已删除",
	})
}
