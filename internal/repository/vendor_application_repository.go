package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type VendorApplicationRepository interface {
	Create(ctx context.Context, app model.VendorApplication) (model.VendorApplication, error)

	FindByID(ctx context.Context, id int64) (model.VendorApplication, error)

	// statusが空なら全件
	List(ctx context.Context, status model.VendorApplicationStatus) ([]model.VendorApplication, error)

	FindByUsername(ctx context.Context, username string) (model.VendorApplication, error)

	UpdateStatus(ctx context.Context, id int64, status model.VendorApplicationStatus) error
}
