package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// App 应用配置
// 全部通过环境变量注入，本地开发配合 .env 文件使用
type App struct {
	// Server
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// Database
	// 留空时回退到本地 sqlite 文件，方便本地起服务
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"novarix.db"`

	// Session
	CookieName   string `envconfig:"SESSION_COOKIE_NAME" default:"sid"`
	CookieDomain string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SessionTTLHr int    `envconfig:"SESSION_TTL_HR" default:"168"`

	// CORS 允许的前端来源，逗号分隔
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// Storage (Logo 上传)
	StorageProvider string `envconfig:"STORAGE_PROVIDER" default:"local"`
	StorageBucket   string `envconfig:"AWS_BUCKET" default:""`
	StorageRegion   string `envconfig:"AWS_REGION" default:""`
	StorageKey      string `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	StorageSecret   string `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
	StorageCDN      string `envconfig:"AWS_CDN_DOMAIN" default:""`
	StorageBasePath string `envconfig:"STORAGE_BASE_PATH" default:"novarix"`
	LocalStorageDir string `envconfig:"LOCAL_STORAGE_DIR" default:"uploads"`
	PublicBaseURL   string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// Load 加载配置
func Load() (*App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Origins 解析 CORS 来源列表
func (c *App) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
