package api

import (
	"sambert/config"
	"sambert/database"
	"sambert/models"

	"github.com/gin-gonic/gin"
)

// StatusHandler 系统状态处理器
type StatusHandler struct{}

// NewStatusHandler 创建系统状态处理器
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Status 系统状态
// @Summary 系统状态
// @Description 返回数据库连通性和各表记录数
// @Tags 系统
// @Produce json
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "error"
	}

	var users, categories, spendings, ious int64
	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Category{}).Count(&categories)
	database.DB.Model(&models.Spending{}).Count(&spendings)
	database.DB.Model(&models.IOU{}).Count(&ious)

	Success(c, gin.H{
		"database":   dbStatus,
		"users":      users,
		"categories": categories,
		"spendings":  spendings,
		"ious":       ious,
	})
}

// Seed 重置并重建种子数据
// @Summary 重置种子数据
// @Description 清空所有记录并按配置重建成员和默认类别。仅在配置允许且非 release 模式下可用。
// @Tags 系统
// @Produce json
// @Success 200 {object} Response "重置成功"
// @Failure 400 {object} Response "当前环境不允许重置"
// @Router /api/v1/seed [post]
func (h *StatusHandler) Seed(c *gin.Context) {
	cfg := config.GlobalConfig
	if cfg == nil || !cfg.Seed.AllowReset || cfg.Server.Mode == "release" {
		BadRequest(c, "当前环境不允许重置数据")
		return
	}

	if err := database.ResetAndSeed(database.DB, cfg); err != nil {
		InternalError(c, SafeErrorMessage(err, "重置数据失败"))
		return
	}
	SuccessWithMessage(c, "重置成功", nil)
}
