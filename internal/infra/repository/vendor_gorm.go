package repository

import (
	"context"
	"errors"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"gorm.io/gorm"
)

type VendorGormRepository struct {
	db *gorm.DB
}

func NewVendorGormRepository(db *gorm.DB) *VendorGormRepository {
	return &VendorGormRepository{db: db}
}

func (r *VendorGormRepository) FindByID(ctx context.Context, vendorID int64) (model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).Where("id = ?", vendorID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vendor{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}

func (r *VendorGormRepository) FindByEmail(ctx context.Context, email string) (model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vendor{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}

func (r *VendorGormRepository) Create(ctx context.Context, v model.Vendor) (model.Vendor, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}
