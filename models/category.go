package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 消费类别（扁平标签，无层级）
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Emoji     string         `json:"emoji" gorm:"size:10;not null"`
	Color     string         `json:"color" gorm:"size:20;default:#6B7280"` // 颜色代码，如 #EF4444
	Sort      int            `json:"sort" gorm:"default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories 返回初始类别（仅在 categories 表为空时种子写入）
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food", Emoji: "🍔", Color: "#EF4444", Sort: 10},
		{Name: "Grocery", Emoji: "🛒", Color: "#10B981", Sort: 20},
		{Name: "Online Shopping", Emoji: "📦", Color: "#3B82F6", Sort: 30},
		{Name: "Transport", Emoji: "🚗", Color: "#F59E0B", Sort: 40},
		{Name: "Entertainment", Emoji: "🎬", Color: "#8B5CF6", Sort: 50},
		{Name: "Bills", Emoji: "💡", Color: "#6B7280", Sort: 60},
		{Name: "Personal Care", Emoji: "🧴", Color: "#EC4899", Sort: 70},
		{Name: "Offline Shopping", Emoji: "🛍️", Color: "#8B5CF6", Sort: 80},
		{Name: "Health", Emoji: "🏥", Color: "#10B981", Sort: 90},
	}
}
