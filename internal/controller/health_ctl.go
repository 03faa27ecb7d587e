package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceVersion 服务版本号，构建时可用 -ldflags 覆盖
var ServiceVersion = "1.0.0"

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health 健康检查
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "novarix-studio",
		"version":   ServiceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
