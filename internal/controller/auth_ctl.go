package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/middleware"
	"novarix_studio_v1/internal/service"
)

// ==================== AuthController 认证控制器 ====================

// AuthController 认证控制器
type AuthController struct {
	authService *service.AuthService
	sessions    *middleware.SessionStore
	cookie      *middleware.CookieConfig
}

// NewAuthController 创建认证控制器
func NewAuthController(authService *service.AuthService, sessions *middleware.SessionStore, cookie *middleware.CookieConfig) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
	}
}

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 200 {object} dto.UserInfo
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	// 注册即登录
	sid := c.sessions.Create(user.ID)
	c.cookie.SetSessionCookie(ctx, sid)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": service.ToUserInfo(user),
	})
}

// Login 用户登录
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	sid := c.sessions.Create(user.ID)
	c.cookie.SetSessionCookie(ctx, sid)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": service.ToUserInfo(user),
	})
}

// Logout 登出，幂等
// @Summary 登出
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if sid, err := ctx.Cookie(c.cookie.Name); err == nil && sid != "" {
		c.sessions.Destroy(sid)
	}
	c.cookie.ClearSessionCookie(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "已登出",
	})
}

// CurrentUser 获取当前登录用户
// @Summary 获取当前登录用户
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} map[string]interface{}
// @Router /auth/user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user := middleware.GetCurrentUser(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": service.ToUserInfo(user),
	})
}
