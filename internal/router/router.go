package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"novarix_studio_v1/internal/controller"
	"novarix_studio_v1/internal/middleware"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
)

// ==================== 路由配置 ====================

// Options 路由装配所需的全部组件
type Options struct {
	Auth      *controller.AuthController
	Order     *controller.OrderController
	User      *controller.UserController
	Partner   *controller.PartnerController
	IP        *controller.IPBlacklistController
	Health    *controller.HealthController
	Upload    *controller.UploadController
	SessAuth  *middleware.SessionAuth
	IPRepo    repository.IPBlacklistRepository
	Origins   []string
	StaticDir string // 非空时挂 /uploads 静态目录（本地存储模式）
}

// Setup 装配 Gin 引擎
func Setup(opts *Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.Origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.IPBlacklistFilter(opts.IPRepo))

	if opts.StaticDir != "" {
		r.Static("/uploads", opts.StaticDir)
	}

	// swag init 生成 docs 后此路由即可用
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// ==================== 公开路由 ====================
	api.GET("/health", opts.Health.Health)
	api.GET("/partners", opts.Partner.ListActive)

	auth := api.Group("/auth")
	{
		auth.POST("/register", opts.Auth.Register)
		auth.POST("/login", opts.Auth.Login)
		auth.POST("/logout", opts.Auth.Logout)
	}

	// ==================== 需登录 ====================
	authed := api.Group("")
	authed.Use(opts.SessAuth.RequireAuth())
	{
		authed.GET("/auth/user", opts.Auth.CurrentUser)
		authed.GET("/user/stats", opts.Order.Stats)
		authed.POST("/uploads/logo", opts.Upload.UploadLogo)

		authed.POST("/orders", opts.Order.Create)
		authed.GET("/orders", opts.Order.List)
		authed.GET("/orders/:id", opts.Order.Get)
		authed.PATCH("/orders/:id/status",
			middleware.RequireRole(model.RoleDev, model.RoleAdmin, model.RoleOwner),
			opts.Order.UpdateStatus)
	}

	// ==================== 团队角色 ====================
	team := api.Group("")
	team.Use(opts.SessAuth.RequireAuth(), middleware.RequireRole(model.RoleDev, model.RoleAdmin, model.RoleOwner))
	{
		team.GET("/users", opts.User.ListAll)
		team.GET("/team", opts.User.ListTeam)
	}

	// ==================== admin / owner ====================
	admin := api.Group("")
	admin.Use(opts.SessAuth.RequireAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleOwner))
	{
		admin.POST("/users", opts.User.Provision)
		admin.PATCH("/users/:id/notes", opts.User.UpdateNotes)
		admin.PATCH("/users/:id/blacklist", opts.User.UpdateBlacklist)
	}

	// ==================== 仅 owner ====================
	owner := api.Group("")
	owner.Use(opts.SessAuth.RequireAuth(), middleware.RequireRole(model.RoleOwner))
	{
		owner.PATCH("/users/:id/role", opts.User.UpdateRole)
		owner.DELETE("/users/:id", opts.User.Delete)

		owner.GET("/admin/partners", opts.Partner.ListAll)
		owner.POST("/admin/partners", opts.Partner.Create)
		owner.PATCH("/admin/partners/:id", opts.Partner.Update)
		owner.DELETE("/admin/partners/:id", opts.Partner.Delete)

		owner.GET("/admin/ip-blacklist", opts.IP.List)
		owner.POST("/admin/ip-blacklist", opts.IP.Add)
		owner.DELETE("/admin/ip-blacklist/:ip", opts.IP.Remove)
	}

	return r
}
