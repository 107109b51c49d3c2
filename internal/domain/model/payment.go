package model

import "time"

// 支払い方法。注文はpayment_idで参照するだけで、
// 決済ゲートウェイ連携は持たない。
type Payment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"type:varchar(200);not null;index" json:"username"`
	CardHolder  string    `gorm:"type:varchar(200);not null" json:"card_holder"`
	CardLast4   string    `gorm:"type:varchar(4);not null" json:"card_last4"`
	CardType    string    `gorm:"type:varchar(30)" json:"card_type"`
	ExpiryMonth int       `gorm:"not null" json:"expiry_month"`
	ExpiryYear  int       `gorm:"not null" json:"expiry_year"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
