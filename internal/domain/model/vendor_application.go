package model

import (
	"time"

	"github.com/lib/pq"
)

type VendorApplicationStatus string

const (
	VendorApplicationPending  VendorApplicationStatus = "pending"
	VendorApplicationApproved VendorApplicationStatus = "approved"
	VendorApplicationRejected VendorApplicationStatus = "rejected"
)

type VendorApplication struct {
	ID           int64                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string                  `gorm:"type:varchar(200);not null" json:"name"`
	Email        string                  `gorm:"type:varchar(200);not null" json:"email"`
	Phone        string                  `gorm:"type:varchar(20)" json:"phone"`
	CompanyName  string                  `gorm:"type:varchar(200)" json:"company_name"`
	Description  string                  `gorm:"type:text;not null" json:"description"`
	ProductTypes pq.StringArray          `gorm:"type:text[];not null" json:"product_types"`
	Status       VendorApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Username     string                  `gorm:"type:varchar(200);index" json:"username"`
	CreatedAt    time.Time               `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time               `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
