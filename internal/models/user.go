package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	Username     string         `gorm:"uniqueIndex;not null" json:"username"` // 用户名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	FullName     string         `gorm:"default:''" json:"full_name"`          // 姓名
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`        // 电话
	Address      string         `gorm:"type:varchar(255)" json:"address"`     // 收货地址
	Status       string         `gorm:"default:'active'" json:"status"`       // 账号状态
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`          // Token 版本（用于全量失效）
	LastLoginAt  *time.Time     `json:"last_login_at"`                        // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间

	Cart   *Cart   `gorm:"foreignKey:UserID" json:"cart,omitempty"`   // 关联购物车
	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"` // 关联订单
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
