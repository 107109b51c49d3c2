package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// created_at降順（新しい順）
	ListByUsername(ctx context.Context, username string) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
