package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, paymentID int64) (model.Payment, error)

	ListByUsername(ctx context.Context, username string) ([]model.Payment, error)

	Create(ctx context.Context, p model.Payment) (model.Payment, error)

	Delete(ctx context.Context, paymentID int64) error
}
