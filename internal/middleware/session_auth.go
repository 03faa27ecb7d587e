package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== Cookie 配置 ====================

// CookieConfig 会话 Cookie 配置
type CookieConfig struct {
	Name   string // Cookie 名称
	Domain string // Cookie 域
	MaxAge int    // 有效期（秒）
	Secure bool   // 生产环境必须为 true
}

// DefaultCookieConfig 默认配置
func DefaultCookieConfig() *CookieConfig {
	return &CookieConfig{
		Name:   "sid",
		MaxAge: 7 * 24 * 60 * 60,
	}
}

// SetSessionCookie 下发会话 Cookie (HTTP-only)
func (c *CookieConfig) SetSessionCookie(ctx *gin.Context, sid string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.Name,
		Value:    sid,
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie 清除会话 Cookie
func (c *CookieConfig) ClearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   -1,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ==================== Context Keys ====================

const (
	ContextKeyUser      = "current_user"
	ContextKeySessionID = "session_id"
)

// GetCurrentUser 从 Context 获取当前用户
// 必须在 RequireAuth 之后使用
func GetCurrentUser(ctx *gin.Context) *model.User {
	if val, exists := ctx.Get(ContextKeyUser); exists {
		return val.(*model.User)
	}
	return nil
}

// GetSessionID 从 Context 获取当前会话 ID
func GetSessionID(ctx *gin.Context) string {
	if sid, exists := ctx.Get(ContextKeySessionID); exists {
		return sid.(string)
	}
	return ""
}

// ==================== Gin 中间件 ====================

// SessionAuth 会话认证组件
type SessionAuth struct {
	Store    *SessionStore
	Cookie   *CookieConfig
	UserRepo repository.UserRepository
}

// NewSessionAuth 创建会话认证组件
func NewSessionAuth(store *SessionStore, cookie *CookieConfig, userRepo repository.UserRepository) *SessionAuth {
	return &SessionAuth{Store: store, Cookie: cookie, UserRepo: userRepo}
}

// RequireAuth 认证中间件
// 会话 → 实时用户记录；用户被拉黑时销毁会话并拒绝（强制下线）
func (a *SessionAuth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(a.Cookie.Name)
		if err != nil || sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未登录",
			})
			c.Abort()
			return
		}

		userID, ok := a.Store.Get(sid)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "会话已过期，请重新登录",
			})
			c.Abort()
			return
		}

		user, err := a.UserRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "服务器内部错误",
			})
			c.Abort()
			return
		}
		if user == nil {
			// 用户已被删除，会话随之失效
			a.Store.Destroy(sid)
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "用户不存在",
			})
			c.Abort()
			return
		}

		if user.Blacklisted {
			a.Store.Destroy(sid)
			a.Cookie.ClearSessionCookie(c)
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "账号已被停用",
			})
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeySessionID, sid)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件
// 必须挂在 RequireAuth 之后
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未登录",
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"code":    403,
			"message": "无权限访问",
		})
		c.Abort()
	}
}
