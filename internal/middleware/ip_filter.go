package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/repository"
)

// IPBlacklistFilter IP 黑名单过滤中间件
// 命中黑名单的客户端在进入业务路由前被拒绝
func IPBlacklistFilter(repo repository.IPBlacklistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		blocked, err := repo.Exists(c.Request.Context(), ip)
		if err != nil {
			// 查询失败时放行，不能因黑名单故障拖垮整站
			log.Printf("[IP] 黑名单查询失败: %v", err)
			c.Next()
			return
		}

		if blocked {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "访问被拒绝",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
