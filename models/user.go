package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User 家庭成员模型
// SamBert 是两个人共用的记账本：系统里固定只有两名成员（初始化时由配置种子写入），
// 成员只会被更新（每月预算上限），不会被删除。
type User struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"size:50;not null"`
	BudgetCap *decimal.Decimal `json:"budget_cap,omitempty" gorm:"type:decimal(12,3)"` // 每月预算上限，仅用于展示，不做强制
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
