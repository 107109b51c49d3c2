package usecase

import (
	"context"
	"net/http"

	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"
)

// カート検証と一括在庫操作。
// 注文確定と違って1件ずつ処理し、バッチ全体は失敗させない。
type StockUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

func NewStockUsecase(productRepo repo.ProductRepository, inventoryRepo repo.InventoryRepository) *StockUsecase {
	return &StockUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// 1件ごとの失敗理由
const (
	StockReasonInvalidProduct    = "invalid_product"
	StockReasonInvalidItemData   = "invalid_item_data"
	StockReasonProductNotFound   = "product_not_found"
	StockReasonProductInactive   = "product_inactive"
	StockReasonInsufficientStock = "insufficient_stock"
)

type StockItemInput struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type StockItemResult struct {
	ID             int64  `json:"id"`
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty"`
	AvailableStock *int64 `json:"available_stock,omitempty"`
}

type VerifyStockOutput struct {
	Items    []StockItemResult `json:"items"`
	AllValid bool              `json:"all_valid"`
}

type BulkStockOutput struct {
	Success           bool              `json:"success"`
	SuccessfulUpdates int               `json:"successful_updates"`
	FailedItems       []StockItemResult `json:"failed_items"`
}

// VerifyStock はカート内容を現在在庫と突き合わせる。読み取りのみ。
func (u *StockUsecase) VerifyStock(ctx context.Context, items []StockItemInput) (VerifyStockOutput, error) {
	results := make([]StockItemResult, 0, len(items))
	allValid := true

	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}

		if it.ID <= 0 {
			results = append(results, StockItemResult{ID: it.ID, Valid: false, Reason: StockReasonInvalidProduct})
			allValid = false
			continue
		}

		p, err := u.productRepo.FindByID(ctx, it.ID)
		if err == repo.ErrNotFound {
			results = append(results, StockItemResult{ID: it.ID, Valid: false, Reason: StockReasonProductNotFound})
			allValid = false
			continue
		}
		if err != nil {
			return VerifyStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		stock := p.Stock
		if !p.Active {
			results = append(results, StockItemResult{ID: it.ID, Valid: false, Reason: StockReasonProductInactive, AvailableStock: &stock})
			allValid = false
			continue
		}
		if p.Stock < qty {
			results = append(results, StockItemResult{ID: it.ID, Valid: false, Reason: StockReasonInsufficientStock, AvailableStock: &stock})
			allValid = false
			continue
		}

		results = append(results, StockItemResult{ID: it.ID, Valid: true, AvailableStock: &stock})
	}

	return VerifyStockOutput{Items: results, AllValid: allValid}, nil
}

// DebitStock は1件ずつ条件付き減算する。
// 成功した分は確定し、失敗した分だけ理由付きで返す。
func (u *StockUsecase) DebitStock(ctx context.Context, items []StockItemInput) (BulkStockOutput, error) {
	out := BulkStockOutput{FailedItems: []StockItemResult{}}

	for _, it := range items {
		if it.ID <= 0 || it.Quantity < 1 {
			out.FailedItems = append(out.FailedItems, StockItemResult{ID: it.ID, Reason: StockReasonInvalidItemData})
			continue
		}

		p, err := u.productRepo.FindByID(ctx, it.ID)
		if err == repo.ErrNotFound {
			out.FailedItems = append(out.FailedItems, StockItemResult{ID: it.ID, Reason: StockReasonProductNotFound})
			continue
		}
		if err != nil {
			return BulkStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ok, err := u.inventoryRepo.DecreaseStockIfEnough(ctx, it.ID, it.Quantity)
		if err != nil {
			return BulkStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			stock := p.Stock
			out.FailedItems = append(out.FailedItems, StockItemResult{ID: it.ID, Reason: StockReasonInsufficientStock, AvailableStock: &stock})
			continue
		}

		out.SuccessfulUpdates++
	}

	out.Success = len(out.FailedItems) == 0
	return out, nil
}

// RestoreStock はキャンセル分の在庫を1件ずつ戻す。
func (u *StockUsecase) RestoreStock(ctx context.Context, items []StockItemInput) (BulkStockOutput, error) {
	out := BulkStockOutput{FailedItems: []StockItemResult{}}

	for _, it := range items {
		if it.ID <= 0 || it.Quantity < 1 {
			out.FailedItems = append(out.FailedItems, StockItemResult{ID: it.ID, Reason: StockReasonInvalidItemData})
			continue
		}

		err := u.inventoryRepo.IncreaseStock(ctx, it.ID, it.Quantity)
		if err == repo.ErrNotFound {
			out.FailedItems = append(out.FailedItems, StockItemResult{ID: it.ID, Reason: StockReasonProductNotFound})
			continue
		}
		if err != nil {
			return BulkStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out.SuccessfulUpdates++
	}

	out.Success = len(out.FailedItems) == 0
	return out, nil
}
