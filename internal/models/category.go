package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类表
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`             // 主键
	Name        string         `gorm:"uniqueIndex;not null" json:"name"` // 分类名称
	Description string         `gorm:"type:text" json:"description"`     // 分类描述
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                       // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // 分类下商品
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
