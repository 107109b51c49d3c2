package repository

import (
	"context"

	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	products     repo.ProductRepository
	inventory    repo.InventoryRepository
	payments     repo.PaymentRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository      { return r.inventory }
func (r *txReposGorm) Payments() repo.PaymentRepository         { return r.payments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したら全体をrollbackする。
// 注文作成（注文+明細+在庫減算）とキャンセル（状態+在庫戻し）は
// 必ずこの中で行う。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailGormRepository(tx),
			products:     NewProductGormRepository(tx),
			inventory:    NewInventoryGormRepository(tx),
			payments:     NewPaymentGormRepository(tx),
		}
		return fn(r)
	})
}
