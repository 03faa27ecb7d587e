package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/service"
)

// writeError 哨兵错误 → HTTP 状态码的统一出口
// 未识别的错误一律记日志并返回通用 500，不向外泄露内部细节
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSelfAction),
		errors.Is(err, service.ErrAccountSuspended):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrEmailExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPartnerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidImageData):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
	default:
		log.Printf("[API] 未预期错误: %v", err)
		message = "服务器内部错误"
	}

	ctx.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

// writeBindError 参数绑定失败的统一出口
func writeBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"code":    400,
		"message": "参数错误: " + err.Error(),
	})
}
