package service

import "errors"

// ==================== 错误定义 ====================
// 哨兵错误，controller 层统一映射为 HTTP 状态码

var (
	// 认证 (401)
	ErrInvalidCredentials = errors.New("邮箱或密码错误")

	// 权限 (403)
	ErrForbidden        = errors.New("无权限执行该操作")
	ErrSelfAction       = errors.New("不能对自己的账号执行该操作")
	ErrAccountSuspended = errors.New("账号已被停用")

	// 冲突 (409)
	ErrEmailExists = errors.New("该邮箱已被注册")

	// 不存在 (404)
	ErrUserNotFound    = errors.New("用户不存在")
	ErrOrderNotFound   = errors.New("订单不存在")
	ErrPartnerNotFound = errors.New("合作伙伴不存在")

	// 参数 (400)
	ErrInvalidRole       = errors.New("非法的角色值")
	ErrInvalidTransition = errors.New("非法的订单状态流转")
	ErrInvalidImageData  = errors.New("非法的图片数据")

	// 配额 (429)
	ErrQuotaExceeded = errors.New("本月订单数已达上限（每月 3 单）")
)
