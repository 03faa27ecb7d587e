package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/service"
)

// ==================== UploadController Logo 上传控制器 ====================

// UploadController Logo 上传控制器
type UploadController struct {
	storageService *service.StorageService
}

// NewUploadController 创建上传控制器
func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{storageService: storageService}
}

// UploadLogo 上传机器人 Logo（base64）
// @Summary 上传 Logo
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body dto.UploadLogoRequest true "base64 图片"
// @Success 200 {object} dto.UploadLogoResponse
// @Failure 400 {object} map[string]interface{}
// @Router /uploads/logo [post]
func (c *UploadController) UploadLogo(ctx *gin.Context) {
	var req dto.UploadLogoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	// 图片数据问题是 400，存储后端故障走通用 500
	url, err := c.storageService.SaveBase64(ctx.Request.Context(), req.Data, "logos")
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": dto.UploadLogoResponse{URL: url},
	})
}
