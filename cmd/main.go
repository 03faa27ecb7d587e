package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"novarix_studio_v1/internal/controller"
	"novarix_studio_v1/internal/middleware"
	"novarix_studio_v1/internal/model"
	"novarix_studio_v1/internal/repository"
	"novarix_studio_v1/internal/router"
	"novarix_studio_v1/internal/service"
	"novarix_studio_v1/internal/task"
	"novarix_studio_v1/pkg/config"
	"novarix_studio_v1/pkg/database"
)

func main() {
	// 1. 加载配置 (.env 仅在本地开发存在)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. 初始化数据库
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db)

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	staticDir := ""
	if cfg.StorageProvider == "local" {
		staticDir = cfg.LocalStorageDir
	}
	r := router.Setup(&router.Options{
		Auth:      deps.Controllers.Auth,
		Order:     deps.Controllers.Order,
		User:      deps.Controllers.User,
		Partner:   deps.Controllers.Partner,
		IP:        deps.Controllers.IP,
		Health:    deps.Controllers.Health,
		Upload:    deps.Controllers.Upload,
		SessAuth:  deps.SessAuth,
		IPRepo:    deps.Repos.IP,
		Origins:   cfg.Origins(),
		StaticDir: staticDir,
	})

	// 6. 启动服务
	startServer(cfg, r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *Controllers
	Sessions    *middleware.SessionStore
	SessAuth    *middleware.SessionAuth
}

// Repositories 仓库集合
type Repositories struct {
	User    repository.UserRepository
	Order   repository.OrderRepository
	Partner repository.PartnerRepository
	IP      repository.IPBlacklistRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Order   *service.OrderService
	User    *service.UserService
	Partner *service.PartnerService
	IP      *service.IPBlacklistService
	Storage *service.StorageService
}

// Controllers 控制器集合
type Controllers struct {
	Auth    *controller.AuthController
	Order   *controller.OrderController
	User    *controller.UserController
	Partner *controller.PartnerController
	IP      *controller.IPBlacklistController
	Health  *controller.HealthController
	Upload  *controller.UploadController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.App) *gorm.DB {
	return database.InitDB(cfg.DatabaseURL, cfg.SQLitePath,
		&model.User{},
		&model.Order{},
		&model.Partner{},
		&model.IPBlacklist{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.App, db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:    repository.NewUserRepository(db),
		Order:   repository.NewOrderRepository(db),
		Partner: repository.NewPartnerRepository(db),
		IP:      repository.NewIPBlacklistRepository(db),
	}

	// -------- 会话 --------
	sessions := middleware.NewSessionStore(time.Duration(cfg.SessionTTLHr) * time.Hour)
	cookie := &middleware.CookieConfig{
		Name:   cfg.CookieName,
		Domain: cfg.CookieDomain,
		MaxAge: cfg.SessionTTLHr * 3600,
		Secure: cfg.CookieSecure,
	}
	sessAuth := middleware.NewSessionAuth(sessions, cookie, repos.User)

	// -------- 存储服务 --------
	storageSvc := initStorageService(cfg)

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.User),
		Order:   service.NewOrderService(repos.Order),
		User:    service.NewUserService(repos.User),
		Partner: service.NewPartnerService(repos.Partner),
		IP:      service.NewIPBlacklistService(repos.IP),
		Storage: storageSvc,
	}

	// -------- Controller 层 --------
	controllers := &Controllers{
		Auth:    controller.NewAuthController(services.Auth, sessions, cookie),
		Order:   controller.NewOrderController(services.Order),
		User:    controller.NewUserController(services.User),
		Partner: controller.NewPartnerController(services.Partner),
		IP:      controller.NewIPBlacklistController(services.IP),
		Health:  controller.NewHealthController(),
		Upload:  controller.NewUploadController(storageSvc),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		Sessions:    sessions,
		SessAuth:    sessAuth,
	}
}

// initStorageService 初始化存储服务
func initStorageService(cfg *config.App) *service.StorageService {
	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		Provider:      cfg.StorageProvider,
		Bucket:        cfg.StorageBucket,
		Region:        cfg.StorageRegion,
		AccessKey:     cfg.StorageKey,
		SecretKey:     cfg.StorageSecret,
		CDNDomain:     cfg.StorageCDN,
		BasePath:      cfg.StorageBasePath,
		LocalDir:      cfg.LocalStorageDir,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("存储服务初始化失败: %v", err)
	}
	return storageSvc
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	pruneTask := task.NewSessionPruneTask(deps.Sessions)
	if err := pruneTask.Start(); err != nil {
		log.Fatalf("定时任务启动失败: %v", err)
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(cfg *config.App, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
