package api

import (
	"strings"

	"sambert/database"
	"sambert/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50" example:"Coffee"`
	Emoji string `json:"emoji" binding:"required,max=10" example:"☕"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#8B5CF6"`
	Sort  int    `json:"sort"`
}

// List 获取类别列表
// @Summary 获取消费类别列表
// @Description 按排序返回所有消费类别
// @Tags 类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建消费类别
// @Description 创建新的消费类别，名称不能重复；不传颜色时使用默认灰色
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	// 唯一性
	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "类别名称已存在")
		return
	}

	color := req.Color
	if color == "" {
		color = "#6B7280" // 默认灰色
	}
	cat := models.Category{Name: req.Name, Emoji: req.Emoji, Color: color, Sort: req.Sort}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建类别失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}
