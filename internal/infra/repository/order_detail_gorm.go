package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"

	"gorm.io/gorm"
)

type OrderDetailGormRepository struct {
	db *gorm.DB
}

func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

func (r *OrderDetailGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetail) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderDetailGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	var items []model.OrderDetail
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.OrderDetail{}, err
	}
	return items, nil
}
