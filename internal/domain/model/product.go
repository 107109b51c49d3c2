package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID    *int64          `gorm:"index" json:"vendor_id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Rating      float64         `json:"rating"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image_url"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
