package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/service"
)

// ==================== IPBlacklistController IP 黑名单控制器 ====================

// IPBlacklistController IP 黑名单控制器（仅 owner）
type IPBlacklistController struct {
	ipService *service.IPBlacklistService
}

// NewIPBlacklistController 创建 IP 黑名单控制器
func NewIPBlacklistController(ipService *service.IPBlacklistService) *IPBlacklistController {
	return &IPBlacklistController{ipService: ipService}
}

// List 黑名单 IP 列表
// @Summary 黑名单 IP 列表
// @Tags IPBlacklist
// @Produce json
// @Success 200 {array} model.IPBlacklist
// @Failure 403 {object} map[string]interface{}
// @Router /admin/ip-blacklist [get]
func (c *IPBlacklistController) List(ctx *gin.Context) {
	entries, err := c.ipService.ListAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": entries,
	})
}

// Add 加入黑名单
// @Summary 加入 IP 黑名单
// @Tags IPBlacklist
// @Accept json
// @Produce json
// @Param request body dto.AddIPRequest true "IP 地址"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/ip-blacklist [post]
func (c *IPBlacklistController) Add(ctx *gin.Context) {
	var req dto.AddIPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := c.ipService.Add(ctx.Request.Context(), req.IP); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "IP 已加入黑名单",
	})
}

// Remove 移出黑名单
// @Summary 移出 IP 黑名单
// @Tags IPBlacklist
// @Produce json
// @Param ip path string true "IP 地址"
// @Success 200 {object} map[string]interface{}
// @Router /admin/ip-blacklist/{ip} [delete]
func (c *IPBlacklistController) Remove(ctx *gin.Context) {
	ip := ctx.Param("ip")
	if ip == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的 IP 地址",
		})
		return
	}

	if err := c.ipService.Remove(ctx.Request.Context(), ip); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "IP 已移出黑名单",
	})
}
