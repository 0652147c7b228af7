package api

import (
	"log"
	"strconv"
	"time"

	"sambert/config"
	"sambert/database"
	"sambert/models"
	"sambert/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SpendingHandler 消费记录处理器
type SpendingHandler struct {
	ledger *service.Ledger
	email  *service.EmailService
}

// NewSpendingHandler 创建消费记录处理器
func NewSpendingHandler(ledger *service.Ledger, email *service.EmailService) *SpendingHandler {
	return &SpendingHandler{ledger: ledger, email: email}
}

// CreateSpendingRequest 创建消费记录请求
// is_shared 为 true 时走共享消费流程：amount 是消费总额，user_id 是付款方，
// 系统按一半金额为付款方记账，并为另一方生成待确认的 IOU
type CreateSpendingRequest struct {
	UserID     uint            `json:"user_id" binding:"required" example:"1"`
	Title      string          `json:"title" binding:"required,max=255" example:"Dinner"`
	Amount     decimal.Decimal `json:"amount" example:"99.90"`
	CategoryID uint            `json:"category_id" binding:"required" example:"1"`
	Notes      string          `json:"notes" binding:"max=255" example:"mamak"`
	SpentAt    string          `json:"spent_at" example:"2024-01-15 12:30:00"`
	IsShared   bool            `json:"is_shared"`
}

// SpendingListRequest 消费记录列表请求
type SpendingListRequest struct {
	Page     int   `form:"page" example:"1"`
	PageSize int   `form:"page_size" example:"20"`
	UserID   *uint `form:"user_id"`
	Month    *int  `form:"month" example:"1"`
	Year     *int  `form:"year" example:"2024"`
	Shared   bool  `form:"shared"`
}

// SharedSpendingResponse 共享消费的创建结果：付款方的消费记录 + 对方的待确认 IOU
type SharedSpendingResponse struct {
	Spending *models.Spending `json:"spending"`
	IOU      *models.IOU      `json:"iou"`
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 记录一笔消费。is_shared 为 true 时按两人平摊处理：付款方记一半，另一方生成待确认 IOU。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateSpendingRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Spending} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/spendings [post]
func (h *SpendingHandler) Create(c *gin.Context) {
	var req CreateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 解析时间（可选，缺省为当前时间）
	var spentAt time.Time
	if req.SpentAt != "" {
		var err error
		spentAt, err = time.ParseInLocation("2006-01-02 15:04:05", req.SpentAt, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
	}

	if req.IsShared {
		spending, iou, err := h.ledger.RecordSharedExpense(req.Title, req.Amount, req.CategoryID, req.Notes, req.UserID)
		if err != nil {
			LedgerError(c, err, "创建共享消费失败")
			return
		}
		h.notifyBudget(spending)
		SuccessWithMessage(c, "创建成功", SharedSpendingResponse{Spending: spending, IOU: iou})
		return
	}

	spending, err := h.ledger.RecordSpending(req.UserID, req.Title, req.Amount, req.CategoryID, req.Notes, spentAt)
	if err != nil {
		LedgerError(c, err, "创建消费记录失败")
		return
	}
	h.notifyBudget(spending)
	SuccessWithMessage(c, "创建成功", spending)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按时间倒序分页返回消费记录（带成员名和类别信息），支持按成员 / 月份 / 是否共享筛选。month 为 1-12。
// @Tags 消费记录
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param user_id query int false "成员ID"
// @Param month query int false "月份 (1-12)，须与 year 同时提供"
// @Param year query int false "年份，须与 month 同时提供"
// @Param shared query bool false "只看共享消费"
// @Success 200 {object} Response{data=PageResponse} "获取成功"
// @Router /api/v1/spendings [get]
func (h *SpendingHandler) List(c *gin.Context) {
	var req SpendingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	list, total, err := h.ledger.ListSpendings(service.SpendingFilter{
		UserID:     req.UserID,
		Month:      req.Month,
		Year:       req.Year,
		SharedOnly: req.Shared,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		LedgerError(c, err, "查询消费记录失败")
		return
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     list,
	})
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录。无级联：不会撤销由 IOU 结算生成的其它记录。
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/spendings/{id} [delete]
func (h *SpendingHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	if err := h.ledger.DeleteSpending(uint(id64)); err != nil {
		LedgerError(c, err, "删除消费记录失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// notifyBudget 预算提醒：这笔消费使当月总额首次越过预算上限时发邮件
// 异步执行，失败只记日志，绝不影响记账本身
func (h *SpendingHandler) notifyBudget(spending *models.Spending) {
	cfg := config.GlobalConfig
	if cfg == nil || !cfg.Email.Enabled || h.email == nil {
		return
	}
	member, ok := cfg.Household.MemberByID(spending.UserID)
	if !ok || member.Email == "" {
		return
	}

	go func() {
		var user models.User
		if err := database.DB.First(&user, spending.UserID).Error; err != nil || user.BudgetCap == nil {
			return
		}
		month := spending.SpentAt.Month()
		year := spending.SpentAt.Year()
		total, err := h.ledger.MonthlyTotal(spending.UserID, int(month), year)
		if err != nil {
			log.Printf("预算提醒: 统计月度消费失败: %v", err)
			return
		}
		cap := *user.BudgetCap
		// 只在这笔消费恰好越线时提醒一次
		if total.LessThanOrEqual(cap) || total.Sub(spending.Amount).GreaterThan(cap) {
			return
		}
		if err := h.email.SendBudgetAlert(member.Email, member.Name, cfg.Household.Currency, total, cap, month, year); err != nil {
			log.Printf("预算提醒: 发送邮件失败: %v", err)
		}
	}()
}
