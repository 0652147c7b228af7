package service

import (
	"fmt"

	"sambert/models"

	"gorm.io/gorm"
)

// SpendingDetail 消费记录 + 关联展示字段（成员名、类别名 / emoji / 颜色）
type SpendingDetail struct {
	models.Spending
	UserName      string `json:"user_name"`
	CategoryName  string `json:"category_name"`
	CategoryEmoji string `json:"category_emoji"`
	CategoryColor string `json:"category_color"`
}

// IOUDetail 借还记录 + 关联展示字段
type IOUDetail struct {
	models.IOU
	FromUserName  string `json:"from_user_name"`
	ToUserName    string `json:"to_user_name"`
	CategoryName  string `json:"category_name"`
	CategoryEmoji string `json:"category_emoji"`
	CategoryColor string `json:"category_color"`
}

// SpendingFilter 消费列表筛选条件
// Month/Year 要么都给要么都不给；Page 从 1 开始
type SpendingFilter struct {
	UserID     *uint
	Month      *int
	Year       *int
	SharedOnly bool
	Page       int
	PageSize   int
}

// ListSpendings 按时间倒序分页列出消费记录
func (l *Ledger) ListSpendings(f SpendingFilter) ([]SpendingDetail, int64, error) {
	if (f.Month == nil) != (f.Year == nil) {
		return nil, 0, fmt.Errorf("month 和 year 必须同时提供: %w", ErrInvalidPeriod)
	}
	if f.UserID != nil && !l.IsMember(*f.UserID) {
		return nil, 0, fmt.Errorf("成员 %d: %w", *f.UserID, ErrUnknownMember)
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}

	build := func() *gorm.DB {
		q := l.db.Model(&models.Spending{})
		if f.UserID != nil {
			q = q.Where("spendings.user_id = ?", *f.UserID)
		}
		if f.SharedOnly {
			q = q.Where("spendings.is_shared = ?", true)
		}
		if f.Month != nil {
			start, end, _ := MonthRange(*f.Year, *f.Month)
			q = q.Where("spendings.spent_at >= ? AND spendings.spent_at < ?", start, end)
		}
		return q
	}
	if f.Month != nil {
		if _, _, err := MonthRange(*f.Year, *f.Month); err != nil {
			return nil, 0, err
		}
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计消费记录失败: %w", err)
	}

	var list []SpendingDetail
	offset := (f.Page - 1) * f.PageSize
	err := build().
		Select("spendings.*, users.name AS user_name, categories.name AS category_name, categories.emoji AS category_emoji, categories.color AS category_color").
		Joins("LEFT JOIN users ON users.id = spendings.user_id").
		Joins("LEFT JOIN categories ON categories.id = spendings.category_id").
		Order("spendings.spent_at DESC").
		Offset(offset).Limit(f.PageSize).
		Scan(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询消费记录失败: %w", err)
	}
	return list, total, nil
}

// ListIOUs 按时间倒序列出借还记录
// userID 非 nil 时只返回与该成员相关（欠人或被欠）的记录；status 非空时按状态过滤
func (l *Ledger) ListIOUs(userID *uint, status string) ([]IOUDetail, error) {
	if userID != nil && !l.IsMember(*userID) {
		return nil, fmt.Errorf("成员 %d: %w", *userID, ErrUnknownMember)
	}

	query := l.db.Model(&models.IOU{}).
		Select("ious.*, fu.name AS from_user_name, tu.name AS to_user_name, categories.name AS category_name, categories.emoji AS category_emoji, categories.color AS category_color").
		Joins("LEFT JOIN users fu ON fu.id = ious.from_user_id").
		Joins("LEFT JOIN users tu ON tu.id = ious.to_user_id").
		Joins("LEFT JOIN categories ON categories.id = ious.category_id").
		Order("ious.date DESC")

	if userID != nil {
		query = query.Where("ious.from_user_id = ? OR ious.to_user_id = ?", *userID, *userID)
	}
	if status != "" {
		query = query.Where("ious.status = ?", status)
	}

	var list []IOUDetail
	if err := query.Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("查询借还记录失败: %w", err)
	}
	return list, nil
}
