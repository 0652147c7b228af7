package api

import (
	"strconv"

	"sambert/database"
	"sambert/models"
	"sambert/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserHandler 成员处理器
type UserHandler struct {
	ledger *service.Ledger
}

// NewUserHandler 创建成员处理器
func NewUserHandler(ledger *service.Ledger) *UserHandler {
	return &UserHandler{ledger: ledger}
}

// UpdateBudgetRequest 更新预算上限请求
type UpdateBudgetRequest struct {
	BudgetCap decimal.Decimal `json:"budget_cap" example:"3000"`
}

// List 获取成员列表
// @Summary 获取成员列表
// @Description 返回账本的两名成员及各自的预算上限
// @Tags 成员
// @Produce json
// @Success 200 {object} Response{data=[]models.User} "获取成功"
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询成员失败"))
		return
	}
	Success(c, users)
}

// UpdateBudget 更新成员预算上限
// @Summary 更新预算上限
// @Description 设置成员的每月预算上限。上限仅用于展示，不会拦截消费。
// @Tags 成员
// @Accept json
// @Produce json
// @Param id path int true "成员ID"
// @Param request body UpdateBudgetRequest true "预算上限"
// @Success 200 {object} Response{data=models.User} "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "成员不存在"
// @Router /api/v1/users/{id}/budget [put]
func (h *UserHandler) UpdateBudget(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的成员ID")
		return
	}
	userID := uint(id64)
	if !h.ledger.IsMember(userID) {
		NotFound(c, "成员不存在")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if !req.BudgetCap.IsPositive() {
		BadRequest(c, "预算上限必须大于 0")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "成员不存在")
		return
	}
	if err := database.DB.Model(&user).Update("budget_cap", req.BudgetCap).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新预算失败"))
		return
	}
	user.BudgetCap = &req.BudgetCap

	SuccessWithMessage(c, "更新成功", user)
}
