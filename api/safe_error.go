package api

import (
	"errors"

	"sambert/config"
	"sambert/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// LedgerError 把账本服务的错误映射为 HTTP 响应
// 业务规则错误（参数校验 / 记录不存在 / 状态机冲突）原样返回给用户；
// 其余视为存储层故障，release 模式下只返回兜底文案
func LedgerError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		Conflict(c, err.Error())
	case service.IsBusinessError(err):
		BadRequest(c, err.Error())
	default:
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
