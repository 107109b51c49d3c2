package repository

import (
	"context"
	"errors"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 公開商品一覧の検索条件
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type ProductRepository interface {
	// 公開（active=true）商品のみ
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	// ベンダーの商品一覧（非公開含む）
	ListByVendorID(ctx context.Context, vendorID int64) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)

	// 一括登録。作成したIDを順に返す
	CreateBulk(ctx context.Context, ps []model.Product) ([]int64, error)

	Update(ctx context.Context, p model.Product) error

	SoftDelete(ctx context.Context, id int64) error
}
