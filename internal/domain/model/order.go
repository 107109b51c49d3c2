package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus は文字列を既知のステータスに変換する。
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// DeliveredとCancelledは終端
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo は前方遷移のみ許可する。
// 終端でなければCancelledへはどの状態からでも入れる。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusShipped ||
			next == OrderStatusDelivered || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusDelivered ||
			next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered || next == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string          `gorm:"type:varchar(200);not null;index" json:"username"`
	FirstName      string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string          `gorm:"type:varchar(100);not null" json:"last_name"`
	Address1       string          `gorm:"type:varchar(255);not null" json:"address1"`
	Address2       string          `gorm:"type:varchar(255)" json:"address2"`
	Country        string          `gorm:"type:varchar(100);not null" json:"country"`
	State          string          `gorm:"type:varchar(100);not null" json:"state"`
	City           string          `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode        string          `gorm:"type:varchar(20);not null" json:"zip_code"`
	PhoneNumber    string          `gorm:"type:varchar(30);not null" json:"phone_number"`
	SubtotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal_amount"`
	SalesTaxAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"sales_tax_amount"`
	ShippingFee    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"shipping_fee"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	PaymentID      int64           `gorm:"not null" json:"payment_id"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
