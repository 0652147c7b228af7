package api

import (
	"strconv"
	"time"

	"sambert/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AnalyticsHandler 统计分析处理器
type AnalyticsHandler struct {
	ledger *service.Ledger
}

// NewAnalyticsHandler 创建统计分析处理器
func NewAnalyticsHandler(ledger *service.Ledger) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledger}
}

// TotalResponse 金额汇总响应
type TotalResponse struct {
	Type   string          `json:"type"`
	UserID *uint           `json:"user_id,omitempty"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Total  decimal.Decimal `json:"total"`
}

// Analytics 统计入口
// @Summary 消费统计
// @Description 按 type 返回不同口径的统计。monthly: 某成员某月总额（需 user_id/month/year）；combined: 两人合计某月总额；shared: 某月共享消费总额（还原平摊前全额）；category: 按类别汇总（user_id 和 month/year 可选）。month 为 1-12，缺省为当前月。
// @Tags 统计
// @Produce json
// @Param type query string true "统计类型" Enums(monthly, combined, shared, category)
// @Param user_id query int false "成员ID"
// @Param month query int false "月份 (1-12)"
// @Param year query int false "年份"
// @Success 200 {object} Response "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Router /api/v1/analytics [get]
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	kind := c.Query("type")
	switch kind {
	case "monthly":
		h.monthly(c)
	case "combined":
		h.combined(c)
	case "shared":
		h.shared(c)
	case "category":
		h.category(c)
	default:
		BadRequest(c, "type 必须为 monthly / combined / shared / category 之一")
	}
}

func (h *AnalyticsHandler) monthly(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	if userID == nil {
		BadRequest(c, "monthly 统计需要 user_id")
		return
	}
	month, year, ok := queryPeriod(c)
	if !ok {
		return
	}

	total, err := h.ledger.MonthlyTotal(*userID, month, year)
	if err != nil {
		LedgerError(c, err, "统计月度消费失败")
		return
	}
	Success(c, TotalResponse{Type: "monthly", UserID: userID, Month: month, Year: year, Total: total})
}

func (h *AnalyticsHandler) combined(c *gin.Context) {
	month, year, ok := queryPeriod(c)
	if !ok {
		return
	}

	total, err := h.ledger.CombinedMonthlyTotal(month, year)
	if err != nil {
		LedgerError(c, err, "统计合计消费失败")
		return
	}
	Success(c, TotalResponse{Type: "combined", Month: month, Year: year, Total: total})
}

func (h *AnalyticsHandler) shared(c *gin.Context) {
	month, year, ok := queryPeriod(c)
	if !ok {
		return
	}

	total, err := h.ledger.SharedExpensesTotal(month, year)
	if err != nil {
		LedgerError(c, err, "统计共享消费失败")
		return
	}
	Success(c, TotalResponse{Type: "shared", Month: month, Year: year, Total: total})
}

func (h *AnalyticsHandler) category(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var month, year *int
	if c.Query("month") != "" || c.Query("year") != "" {
		m, y, ok := queryPeriod(c)
		if !ok {
			return
		}
		month, year = &m, &y
	}

	rows, err := h.ledger.CategoryBreakdown(userID, month, year)
	if err != nil {
		LedgerError(c, err, "统计类别汇总失败")
		return
	}
	Success(c, rows)
}

// queryUserID 解析可选的 user_id 参数；解析失败时已写入 400 响应
func queryUserID(c *gin.Context) (*uint, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		BadRequest(c, "无效的成员ID")
		return nil, false
	}
	id := uint(id64)
	return &id, true
}

// queryPeriod 解析 month/year，缺省为当前月；解析失败时已写入 400 响应
func queryPeriod(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			BadRequest(c, "无效的月份")
			return 0, 0, false
		}
		month = m
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			BadRequest(c, "无效的年份")
			return 0, 0, false
		}
		year = y
	}
	return month, year, true
}
