package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemInput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateOrderInput struct {
	Username       string
	FirstName      string
	LastName       string
	Address1       string
	Address2       string
	Country        string
	State          string
	City           string
	ZipCode        string
	PhoneNumber    string
	SubtotalAmount decimal.Decimal
	SalesTaxAmount decimal.Decimal
	ShippingFee    decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentID      int64
	Items          []OrderItemInput
}

type OrderLineOutput struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	Username       string            `json:"username"`
	PaymentID      int64             `json:"payment_id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Address1       string            `json:"address1"`
	Address2       string            `json:"address2"`
	Country        string            `json:"country"`
	State          string            `json:"state"`
	City           string            `json:"city"`
	ZipCode        string            `json:"zip_code"`
	PhoneNumber    string            `json:"phone_number"`
	SubtotalAmount decimal.Decimal   `json:"subtotal_amount"`
	SalesTaxAmount decimal.Decimal   `json:"sales_tax_amount"`
	ShippingFee    decimal.Decimal   `json:"shipping_fee"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	Products       []OrderLineOutput `json:"products"`
}

type OrderSummaryOutput struct {
	ID           int64           `json:"id"`
	Username     string          `json:"username"`
	PaymentID    int64           `json:"payment_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	ProductCount int             `json:"product_count"`
}

// CreateOrder は注文・明細・在庫減算を1トランザクションで確定する。
// どこかで失敗したら全部なかったことにする（部分的な注文は作らない）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (int64, error) {
	if err := validateCreateOrderInput(in); err != nil {
		return 0, err
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//payment_idの存在確認＋所有チェック
		payment, err := r.Payments().FindByID(ctx, in.PaymentID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid payment id")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if payment.Username != in.Username {
			return NewHTTPError(http.StatusBadRequest, "payment does not belong to the user")
		}

		//事前チェック。1件でもダメなら注文全体を失敗させる
		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("product %d not found", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.Active {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("product %s is no longer available", p.Name))
			}
			if p.Stock < it.Quantity {
				return NewHTTPError(http.StatusConflict, fmt.Sprintf("insufficient stock for product %s", p.Name))
			}
		}

		//注文作成（Pendingで開始）
		now := time.Now()
		id, err := r.Orders().Create(ctx, model.Order{
			Username:       in.Username,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			Address1:       in.Address1,
			Address2:       in.Address2,
			Country:        in.Country,
			State:          in.State,
			City:           in.City,
			ZipCode:        in.ZipCode,
			PhoneNumber:    in.PhoneNumber,
			SubtotalAmount: in.SubtotalAmount,
			SalesTaxAmount: in.SalesTaxAmount,
			ShippingFee:    in.ShippingFee,
			TotalAmount:    in.TotalAmount,
			PaymentID:      in.PaymentID,
			Status:         model.OrderStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細作成。unit_priceは注文時点のスナップショット
		details := make([]model.OrderDetail, 0, len(in.Items))
		for _, it := range in.Items {
			details = append(details, model.OrderDetail{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				CreatedAt: now,
			})
		}
		if err := r.OrderDetails().CreateBulk(ctx, id, details); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//在庫減算。条件付きUPDATEなので、事前チェック後に他の注文が
		//先に在庫を取っていてもここで検知できる（負在庫は起きない）
		for _, it := range in.Items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, fmt.Sprintf("insufficient stock for product %d", it.ProductID))
			}
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// CancelOrder はユーザー側のキャンセル。Pendingのみ許可。
func (u *OrderUsecase) CancelOrder(ctx context.Context, orderID int64, requester string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//所有チェック（requesterが指定されたときだけ）
		if requester != "" && requester != o.Username {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		//処理開始後のキャンセルはこの経路では不可
		if o.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusConflict, fmt.Sprintf("cannot cancel order with status %s", o.Status))
		}

		if err := u.releaseStock(ctx, r, orderID); err != nil {
			return err
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// UpdateStatus はベンダー/管理者のステータス更新。
// 遷移は前方のみ。Cancelledに入るときだけ在庫を戻す。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, newStatusRaw string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	newStatus, ok := model.ParseOrderStatus(strings.TrimSpace(newStatusRaw))
	if !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// すでに同じなら何もしない（200）
		if o.Status == newStatus {
			return nil
		}

		if !o.Status.CanTransitionTo(newStatus) {
			return NewHTTPError(http.StatusConflict, fmt.Sprintf("cannot change order status from %s to %s", o.Status, newStatus))
		}

		// Cancelledに入るときだけ在庫戻し。
		// 現在状態を同一Tx内で確認しているので二重credit はない
		if newStatus == model.OrderStatusCancelled {
			if err := u.releaseStock(ctx, r, orderID); err != nil {
				return err
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// releaseStock は注文の全明細分の在庫を戻す。
// キャンセル系の唯一の入口で、呼び出し側は必ず同一Tx内で
// 現在ステータスを確認してから呼ぶこと。
func (u *OrderUsecase) releaseStock(ctx context.Context, r repo.TxRepos, orderID int64) error {
	details, err := r.OrderDetails().ListByOrderID(ctx, orderID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	for _, d := range details {
		err := r.Inventory().IncreaseStock(ctx, d.ProductID, d.Quantity)
		if err == repo.ErrNotFound {
			// 商品が消えていたら戻し先がないだけ。明細は残す
			continue
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

// GetOrder は明細付きの詳細。商品名と画像は参照時に引き直す
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64, requester string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if requester != "" && requester != o.Username {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		details, err := r.OrderDetails().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines := make([]OrderLineOutput, 0, len(details))
		for _, d := range details {
			name := "Unknown Product"
			image := ""

			p, err := r.Products().FindByID(ctx, d.ProductID)
			if err == nil {
				name = p.Name
				image = p.ImageURL
			} else if err != repo.ErrNotFound {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			lines = append(lines, OrderLineOutput{
				ProductID:    d.ProductID,
				ProductName:  name,
				ProductImage: image,
				Quantity:     d.Quantity,
				UnitPrice:    d.UnitPrice,
				Subtotal:     d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity)),
			})
		}

		out = toOrderOutput(o, lines)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListOrders はユーザーの注文サマリー（新しい順、明細なし）
func (u *OrderUsecase) ListOrders(ctx context.Context, username string) ([]OrderSummaryOutput, error) {
	if strings.TrimSpace(username) == "" {
		return []OrderSummaryOutput{}, NewHTTPError(http.StatusBadRequest, "username is required")
	}

	var outs []OrderSummaryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUsername(ctx, username)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderSummaryOutput, 0, len(orders))
		for _, o := range orders {
			details, err := r.OrderDetails().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			outs = append(outs, OrderSummaryOutput{
				ID:           o.ID,
				Username:     o.Username,
				PaymentID:    o.PaymentID,
				FirstName:    o.FirstName,
				LastName:     o.LastName,
				Status:       string(o.Status),
				TotalAmount:  o.TotalAmount,
				CreatedAt:    o.CreatedAt,
				ProductCount: len(details),
			})
		}
		return nil
	})

	if err != nil {
		return []OrderSummaryOutput{}, err
	}
	return outs, nil
}

func validateCreateOrderInput(in CreateOrderInput) error {
	required := []string{
		in.Username, in.FirstName, in.LastName, in.Address1,
		in.Country, in.State, in.City, in.ZipCode, in.PhoneNumber,
	}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return NewHTTPError(http.StatusBadRequest, "missing required fields")
		}
	}
	if in.PaymentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "missing required fields")
	}
	if len(in.Items) == 0 {
		return NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	//金額はサーバーでは再計算しない。負だけ弾く
	if in.SubtotalAmount.IsNegative() || in.SalesTaxAmount.IsNegative() ||
		in.ShippingFee.IsNegative() || in.TotalAmount.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "amounts must be >= 0")
	}

	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return NewHTTPError(http.StatusBadRequest, "each product must have product_id and quantity")
		}
		if it.UnitPrice.IsNegative() {
			return NewHTTPError(http.StatusBadRequest, "unit_price must be >= 0")
		}
	}

	return nil
}

func toOrderOutput(o model.Order, lines []OrderLineOutput) OrderOutput {
	return OrderOutput{
		ID:             o.ID,
		Username:       o.Username,
		PaymentID:      o.PaymentID,
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		Address1:       o.Address1,
		Address2:       o.Address2,
		Country:        o.Country,
		State:          o.State,
		City:           o.City,
		ZipCode:        o.ZipCode,
		PhoneNumber:    o.PhoneNumber,
		SubtotalAmount: o.SubtotalAmount,
		SalesTaxAmount: o.SalesTaxAmount,
		ShippingFee:    o.ShippingFee,
		TotalAmount:    o.TotalAmount,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		Products:       lines,
	}
}
