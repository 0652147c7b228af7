package api

import (
	"strconv"

	"sambert/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IOUHandler 借还记录（Pinjam）处理器
type IOUHandler struct {
	ledger *service.Ledger
}

// NewIOUHandler 创建借还记录处理器
func NewIOUHandler(ledger *service.Ledger) *IOUHandler {
	return &IOUHandler{ledger: ledger}
}

// CreateIOURequest 创建借还记录请求
// from_user 欠 to_user 指定金额，状态从 pending 开始
type CreateIOURequest struct {
	FromUserID uint            `json:"from_user_id" binding:"required" example:"2"`
	ToUserID   uint            `json:"to_user_id" binding:"required" example:"1"`
	Title      string          `json:"title" binding:"required,max=255" example:"Movie tickets"`
	Amount     decimal.Decimal `json:"amount" example:"25.00"`
	CategoryID uint            `json:"category_id" binding:"required" example:"5"`
	Notes      string          `json:"notes" binding:"max=255"`
}

// SettleIOURequest 结算借还记录请求
type SettleIOURequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}

// List 获取借还记录列表
// @Summary 获取借还记录列表
// @Description 按日期倒序返回借还记录（带双方成员名和类别信息），支持按成员和状态筛选
// @Tags 借还
// @Produce json
// @Param user_id query int false "成员ID，返回与该成员相关的记录"
// @Param status query string false "状态" Enums(pending, approved, rejected)
// @Success 200 {object} Response{data=[]service.IOUDetail} "获取成功"
// @Router /api/v1/ious [get]
func (h *IOUHandler) List(c *gin.Context) {
	var userID *uint
	if raw := c.Query("user_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			BadRequest(c, "无效的成员ID")
			return
		}
		id := uint(id64)
		userID = &id
	}

	list, err := h.ledger.ListIOUs(userID, c.Query("status"))
	if err != nil {
		LedgerError(c, err, "查询借还记录失败")
		return
	}
	Success(c, list)
}

// Create 创建借还记录
// @Summary 创建借还记录
// @Description 手动记一笔欠款（Pinjam），状态为 pending，等待欠款方确认
// @Tags 借还
// @Accept json
// @Produce json
// @Param request body CreateIOURequest true "借还记录信息"
// @Success 200 {object} Response{data=models.IOU} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/ious [post]
func (h *IOUHandler) Create(c *gin.Context) {
	var req CreateIOURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	iou, err := h.ledger.RecordDebt(req.FromUserID, req.ToUserID, req.Title, req.Amount, req.CategoryID, req.Notes)
	if err != nil {
		LedgerError(c, err, "创建借还记录失败")
		return
	}
	SuccessWithMessage(c, "创建成功", iou)
}

// UpdateStatus 结算借还记录
// @Summary 结算借还记录
// @Description 把 pending 的借还记录确认（approved）或拒绝（rejected）。确认时为欠款方生成一条消费记录并随响应返回；已结算过的记录返回 409。
// @Tags 借还
// @Accept json
// @Produce json
// @Param id path int true "借还记录ID"
// @Param request body SettleIOURequest true "结算决定"
// @Success 200 {object} Response{data=models.Spending} "结算成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Failure 409 {object} Response "记录已结算"
// @Router /api/v1/ious/{id}/status [put]
func (h *IOUHandler) UpdateStatus(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req SettleIOURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	spending, err := h.ledger.SettleDebt(uint(id64), req.Status)
	if err != nil {
		LedgerError(c, err, "结算借还记录失败")
		return
	}
	if spending != nil {
		SuccessWithMessage(c, "已确认", spending)
		return
	}
	SuccessWithMessage(c, "已拒绝", nil)
}

// Delete 删除借还记录
// @Summary 删除借还记录
// @Description 删除指定的借还记录，任意状态均可删除；不会撤销确认时生成的消费记录
// @Tags 借还
// @Produce json
// @Param id path int true "借还记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/ious/{id} [delete]
func (h *IOUHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	if err := h.ledger.DeleteIOU(uint(id64)); err != nil {
		LedgerError(c, err, "删除借还记录失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
