package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/service"
)

// ==================== PartnerController 合作伙伴控制器 ====================

// PartnerController 合作伙伴控制器
type PartnerController struct {
	partnerService *service.PartnerService
}

// NewPartnerController 创建合作伙伴控制器
func NewPartnerController(partnerService *service.PartnerService) *PartnerController {
	return &PartnerController{partnerService: partnerService}
}

// parsePartnerID 解析路径里的合作伙伴 ID
func parsePartnerID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的合作伙伴 ID",
		})
		return 0, false
	}
	return id, true
}

// ListActive 公开的合作伙伴列表（仅启用中的）
// @Summary 公开合作伙伴列表
// @Tags Partner
// @Produce json
// @Success 200 {array} dto.PartnerInfo
// @Router /partners [get]
func (c *PartnerController) ListActive(ctx *gin.Context) {
	partners, err := c.partnerService.ListActive(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": partners,
	})
}

// ListAll 管理端合作伙伴列表（含停用的）
// @Summary 管理端合作伙伴列表
// @Tags Partner
// @Produce json
// @Success 200 {array} dto.PartnerInfo
// @Failure 403 {object} map[string]interface{}
// @Router /admin/partners [get]
func (c *PartnerController) ListAll(ctx *gin.Context) {
	partners, err := c.partnerService.ListAll(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": partners,
	})
}

// Create 创建合作伙伴（仅 owner）
// @Summary 创建合作伙伴
// @Tags Partner
// @Accept json
// @Produce json
// @Param request body dto.CreatePartnerRequest true "合作伙伴信息"
// @Success 200 {object} dto.PartnerInfo
// @Failure 403 {object} map[string]interface{}
// @Router /admin/partners [post]
func (c *PartnerController) Create(ctx *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	partner, err := c.partnerService.Create(ctx.Request.Context(), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": partner,
	})
}

// Update 更新合作伙伴（仅 owner）
// @Summary 更新合作伙伴
// @Tags Partner
// @Accept json
// @Produce json
// @Param id path int true "合作伙伴 ID"
// @Param request body dto.UpdatePartnerRequest true "更新字段"
// @Success 200 {object} dto.PartnerInfo
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [patch]
func (c *PartnerController) Update(ctx *gin.Context) {
	id, ok := parsePartnerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	partner, err := c.partnerService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "更新成功",
		"data":    partner,
	})
}

// Delete 删除合作伙伴（仅 owner）
// @Summary 删除合作伙伴
// @Tags Partner
// @Produce json
// @Param id path int true "合作伙伴 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [delete]
func (c *PartnerController) Delete(ctx *gin.Context) {
	id, ok := parsePartnerID(ctx)
	if !ok {
		return
	}

	if err := c.partnerService.Delete(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "合作伙伴已删除",
	})
}
