package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sambert/database"
	"sambert/models"
	"sambert/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	ledger *service.Ledger
}

// NewExportHandler 创建导出处理器
func NewExportHandler(ledger *service.Ledger) *ExportHandler {
	return &ExportHandler{ledger: ledger}
}

// exportRange 解析导出的时间范围和可选成员过滤；失败时已写入 400 响应
func (h *ExportHandler) exportRange(c *gin.Context) (start, end time.Time, userID *uint, ok bool) {
	startTimeStr := c.Query("start_time")
	endTimeStr := c.Query("end_time")

	if startTimeStr == "" || endTimeStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return
	}

	var err error
	start, err = time.ParseInLocation("2006-01-02", startTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return
	}
	end, err = time.ParseInLocation("2006-01-02", endTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return
	}
	end = end.Add(24*time.Hour - time.Second)

	if raw := c.Query("user_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			BadRequest(c, "无效的成员ID")
			return
		}
		id := uint(id64)
		if !h.ledger.IsMember(id) {
			BadRequest(c, "成员不存在")
			return
		}
		userID = &id
	}
	ok = true
	return
}

// querySpendings 按时间范围查询消费记录（带成员名和类别名）
func querySpendings(start, end time.Time, userID *uint) ([]service.SpendingDetail, error) {
	query := database.DB.Model(&models.Spending{}).
		Select("spendings.*, users.name AS user_name, categories.name AS category_name, categories.emoji AS category_emoji, categories.color AS category_color").
		Joins("LEFT JOIN users ON users.id = spendings.user_id").
		Joins("LEFT JOIN categories ON categories.id = spendings.category_id").
		Where("spendings.spent_at >= ? AND spendings.spent_at <= ?", start, end)
	if userID != nil {
		query = query.Where("spendings.user_id = ?", *userID)
	}

	var list []service.SpendingDetail
	if err := query.Order("spendings.spent_at DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录
// @Description 根据时间范围导出消费记录为 CSV 文件，可按成员过滤
// @Tags 导出
// @Produce text/csv
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Param user_id query int false "成员ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, userID, ok := h.exportRange(c)
	if !ok {
		return
	}

	spendings, err := querySpendings(start, end, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "成员", "标题", "金额", "类别", "备注", "共享", "消费时间", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, s := range spendings {
		shared := ""
		if s.IsShared {
			shared = "是"
		}
		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.UserName,
			s.Title,
			s.Amount.String(),
			s.CategoryName,
			s.Notes,
			shared,
			s.SpentAt.Format("2006-01-02 15:04:05"),
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("spendings_%s_%s.csv", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出消费记录为 JSON
// @Description 根据时间范围导出消费记录为 JSON 格式，带条数和总额汇总
// @Tags 导出
// @Produce json
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Param user_id query int false "成员ID"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	start, end, userID, ok := h.exportRange(c)
	if !ok {
		return
	}

	spendings, err := querySpendings(start, end, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	totalAmount := decimal.Zero
	for _, s := range spendings {
		totalAmount = totalAmount.Add(s.Amount)
	}

	Success(c, gin.H{
		"start_time":   c.Query("start_time"),
		"end_time":     c.Query("end_time"),
		"total_count":  len(spendings),
		"total_amount": totalAmount,
		"spendings":    spendings,
	})
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为Excel
// @Description 根据时间范围导出消费记录为Excel文件，可按成员过滤，末行带合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Param user_id query int false "成员ID"
// @Success 200 {file} file "Excel文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, userID, ok := h.exportRange(c)
	if !ok {
		return
	}

	spendings, err := querySpendings(start, end, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "消费记录"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 25)
	f.SetColWidth(sheetName, "G", "G", 8)
	f.SetColWidth(sheetName, "H", "H", 20)

	headers := []string{"ID", "成员", "标题", "金额", "类别", "备注", "共享", "消费时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	totalAmount := decimal.Zero
	for i, s := range spendings {
		row := i + 2
		shared := ""
		if s.IsShared {
			shared = "是"
		}
		amount, _ := s.Amount.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.UserName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), s.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), s.CategoryEmoji+" "+s.CategoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), s.Notes)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), shared)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), s.SpentAt.Format("2006-01-02 15:04:05"))

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		totalAmount = totalAmount.Add(s.Amount)
	}

	// 汇总行
	summaryRow := len(spendings) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	summaryAmount, _ := totalAmount.Float64()
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), summaryAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(spendings)))
	f.MergeCell(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("消费记录_%s_%s.xlsx", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
