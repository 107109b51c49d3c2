package repository

import (
	"context"
	"errors"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"gorm.io/gorm"
)

type VendorApplicationGormRepository struct {
	db *gorm.DB
}

func NewVendorApplicationGormRepository(db *gorm.DB) *VendorApplicationGormRepository {
	return &VendorApplicationGormRepository{db: db}
}

func (r *VendorApplicationGormRepository) Create(ctx context.Context, app model.VendorApplication) (model.VendorApplication, error) {
	if err := r.db.WithContext(ctx).Create(&app).Error; err != nil {
		return model.VendorApplication{}, err
	}
	return app, nil
}

func (r *VendorApplicationGormRepository) FindByID(ctx context.Context, id int64) (model.VendorApplication, error) {
	var app model.VendorApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.VendorApplication{}, repo.ErrNotFound
	}
	if err != nil {
		return model.VendorApplication{}, err
	}
	return app, nil
}

func (r *VendorApplicationGormRepository) List(ctx context.Context, status model.VendorApplicationStatus) ([]model.VendorApplication, error) {
	q := r.db.WithContext(ctx).Model(&model.VendorApplication{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var items []model.VendorApplication
	if err := q.Order("created_at desc").Find(&items).Error; err != nil {
		return []model.VendorApplication{}, err
	}
	return items, nil
}

func (r *VendorApplicationGormRepository) FindByUsername(ctx context.Context, username string) (model.VendorApplication, error) {
	var app model.VendorApplication
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at desc").
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.VendorApplication{}, repo.ErrNotFound
	}
	if err != nil {
		return model.VendorApplication{}, err
	}
	return app, nil
}

func (r *VendorApplicationGormRepository) UpdateStatus(ctx context.Context, id int64, status model.VendorApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&model.VendorApplication{}).
		Where("id = ?", id).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
