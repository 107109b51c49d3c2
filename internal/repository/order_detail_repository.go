package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type OrderDetailRepository interface {
	// 明細は注文と同時にのみ作られる
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetail) error

	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error)
}
