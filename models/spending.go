package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Spending 消费记录模型
// Amount 是记在该成员账上的金额：对于共享消费这已经是人均分摊额（总额的一半），
// 不是消费总额。IsShared 标记这笔记录是一次平摊的一半，另一半体现为对方的
// 待确认 IOU，而不是第二条消费记录。
//
// 金额统一使用 decimal(12,3)：三位小数可以精确保存奇数分的一半
// （如 100.01 / 2 = 50.005），保证共享消费按 SUM(amount*2) 还原总额时不丢精度。
type Spending struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	Title      string          `json:"title" gorm:"size:255;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,3);not null"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Notes      string          `json:"notes" gorm:"size:255"`
	SpentAt    time.Time       `json:"spent_at" gorm:"not null;index"`
	IsShared   bool            `json:"is_shared" gorm:"default:false;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
	User       User            `json:"-" gorm:"foreignKey:UserID"`
	Category   Category        `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Spending) TableName() string {
	return "spendings"
}
