package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	UserID          uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	ShippingAddress string         `gorm:"type:text" json:"shipping_address"`                          // 收货地址快照
	ShippingPhone   string         `gorm:"type:varchar(20)" json:"shipping_phone"`                     // 收货电话快照
	Status          string         `gorm:"index;not null" json:"status"`                               // 订单状态
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`            // 支付方式
	PaymentStatus   string         `gorm:"type:varchar(20);not null" json:"payment_status"`            // 支付状态
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
