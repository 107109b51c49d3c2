package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username         string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"username"`
	Email            string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"column:password_hash;not null" json:"-"`
	Role             Role       `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	ResetToken       *string    `gorm:"type:varchar(100)" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
