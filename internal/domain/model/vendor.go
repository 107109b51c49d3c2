package model

import "time"

type Vendor struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Email       string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	CompanyName string    `gorm:"type:varchar(200)" json:"company_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
