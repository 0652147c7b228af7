package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// IOUStatusPending 待确认：唯一可以流转的状态
	IOUStatusPending = "pending"
	// IOUStatusApproved 已确认：债务结清，同时为欠款方生成一条消费记录
	IOUStatusApproved = "approved"
	// IOUStatusRejected 已拒绝：债务作废，无任何副作用
	IOUStatusRejected = "rejected"
)

// IOU 借还记录（Pinjam）模型
// FromUserID 欠 ToUserID 共 Amount。来源有两种：成员手动记一笔欠款，
// 或共享消费自动为未付款一方生成。approved / rejected 均为终态。
type IOU struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	FromUserID uint            `json:"from_user_id" gorm:"index;not null"`
	ToUserID   uint            `json:"to_user_id" gorm:"index;not null"`
	Title      string          `json:"title" gorm:"size:255;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,3);not null"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Notes      string          `json:"notes" gorm:"size:255"`
	Date       time.Time       `json:"date" gorm:"not null;index"`
	Status     string          `json:"status" gorm:"size:20;default:pending;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
	Category   Category        `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (IOU) TableName() string {
	return "ious"
}

// IsPending 是否处于待确认状态
func (i *IOU) IsPending() bool {
	return i.Status == IOUStatusPending
}

// ValidIOUDecision 结算时允许的目标状态
func ValidIOUDecision(status string) bool {
	return status == IOUStatusApproved || status == IOUStatusRejected
}
