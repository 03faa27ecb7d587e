package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novarix_studio_v1/internal/api/dto"
	"novarix_studio_v1/internal/middleware"
	"novarix_studio_v1/internal/service"
)

// ==================== OrderController 订单控制器 ====================

// OrderController 订单控制器
type OrderController struct {
	orderService *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Create 创建订单
// @Summary 创建订单
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "订单信息"
// @Success 200 {object} dto.OrderInfo
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	user := middleware.GetCurrentUser(ctx)

	order, err := c.orderService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": order,
	})
}

// List 订单列表（customer 只看自己的，团队看全部）
// @Summary 订单列表
// @Tags Order
// @Produce json
// @Success 200 {array} dto.OrderInfo
// @Failure 401 {object} map[string]interface{}
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	user := middleware.GetCurrentUser(ctx)

	orders, err := c.orderService.List(ctx.Request.Context(), user)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": orders,
	})
}

// Get 订单详情
// @Summary 订单详情
// @Tags Order
// @Produce json
// @Param id path int true "订单 ID"
// @Success 200 {object} dto.OrderInfo
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的订单 ID",
		})
		return
	}

	user := middleware.GetCurrentUser(ctx)

	order, err := c.orderService.Get(ctx.Request.Context(), user, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": order,
	})
}

// UpdateStatus 更新订单状态/备注（团队角色）
// @Summary 更新订单状态
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "订单 ID"
// @Param request body dto.UpdateOrderStatusRequest true "状态与备注"
// @Success 200 {object} dto.OrderInfo
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的订单 ID",
		})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}

	order, err := c.orderService.UpdateStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "更新成功",
		"data":    order,
	})
}

// Stats 当前用户订单统计
// @Summary 当前用户订单统计
// @Tags Order
// @Produce json
// @Success 200 {object} repository.OrderStats
// @Failure 401 {object} map[string]interface{}
// @Router /user/stats [get]
func (c *OrderController) Stats(ctx *gin.Context) {
	user := middleware.GetCurrentUser(ctx)

	stats, err := c.orderService.Stats(ctx.Request.Context(), user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": stats,
	})
}
