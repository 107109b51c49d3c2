package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type VendorRepository interface {
	FindByID(ctx context.Context, vendorID int64) (model.Vendor, error)

	// userとvendorはemailで紐づく
	FindByEmail(ctx context.Context, email string) (model.Vendor, error)

	Create(ctx context.Context, v model.Vendor) (model.Vendor, error)
}
