package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"github.com/shopspring/decimal"
)

// ベンダー向けのカタログ管理。
// userとvendorはemailで紐づく（originalのスキーマ通り）。
type VendorProductUsecase struct {
	userRepo      repo.UserRepository
	vendorRepo    repo.VendorRepository
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

func NewVendorProductUsecase(
	userRepo repo.UserRepository,
	vendorRepo repo.VendorRepository,
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
) *VendorProductUsecase {
	return &VendorProductUsecase{
		userRepo:      userRepo,
		vendorRepo:    vendorRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

type VendorProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image"`
	Stock       int64           `json:"stock"`
	Active      *bool           `json:"active"`
}

// usernameからvendorを引く。vendor以外は403
func (u *VendorProductUsecase) resolveVendor(ctx context.Context, username string) (*model.User, model.Vendor, error) {
	if strings.TrimSpace(username) == "" {
		return nil, model.Vendor{}, NewHTTPError(http.StatusBadRequest, "username is required")
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if err == repo.ErrNotFound || (err == nil && user.Role != model.RoleVendor) {
		return nil, model.Vendor{}, NewHTTPError(http.StatusForbidden, "user is not a vendor")
	}
	if err != nil {
		return nil, model.Vendor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	vendor, err := u.vendorRepo.FindByEmail(ctx, user.Email)
	if err == repo.ErrNotFound {
		return nil, model.Vendor{}, NewHTTPError(http.StatusNotFound, "vendor profile not found")
	}
	if err != nil {
		return nil, model.Vendor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return user, vendor, nil
}

func (u *VendorProductUsecase) ListProducts(ctx context.Context, username string) ([]model.Product, error) {
	_, vendor, err := u.resolveVendor(ctx, username)
	if err != nil {
		return nil, err
	}

	//非公開も含めて全部返す
	products, err := u.productRepo.ListByVendorID(ctx, vendor.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *VendorProductUsecase) AddProduct(ctx context.Context, username string, in VendorProductInput) (int64, error) {
	_, vendor, err := u.resolveVendor(ctx, username)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return 0, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	vendorID := vendor.ID
	created, err := u.productRepo.Create(ctx, model.Product{
		VendorID:    &vendorID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Rating:      0, // 新規商品はまだ評価なし
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		Active:      active,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created.ID, nil
}

// BulkAddProducts はCSV取り込みなどの一括登録。
// 不正な行は飛ばして、登録できたIDだけ返す
func (u *VendorProductUsecase) BulkAddProducts(ctx context.Context, username string, items []VendorProductInput) ([]int64, error) {
	_, vendor, err := u.resolveVendor(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "no products provided")
	}

	vendorID := vendor.ID
	products := make([]model.Product, 0, len(items))
	for _, in := range items {
		if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() || in.Stock < 0 {
			continue
		}

		active := true
		if in.Active != nil {
			active = *in.Active
		}
		category := in.Category
		if category == "" {
			category = "Other"
		}

		products = append(products, model.Product{
			VendorID:    &vendorID,
			Name:        in.Name,
			Description: in.Description,
			Category:    category,
			Price:       in.Price,
			Rating:      0,
			ImageURL:    in.ImageURL,
			Stock:       in.Stock,
			Active:      active,
		})
	}

	ids, err := u.productRepo.CreateBulk(ctx, products)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ids, nil
}

func (u *VendorProductUsecase) UpdateProduct(ctx context.Context, username string, productID int64, in VendorProductInput) error {
	user, vendor, err := u.resolveVendor(ctx, username)
	if err != nil {
		return err
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//自分の商品だけ
	if p.VendorID == nil || *p.VendorID != vendor.ID {
		return NewHTTPError(http.StatusForbidden, "you don't have permission to update this product")
	}

	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	active := p.Active
	if in.Active != nil {
		active = *in.Active
	}

	updated := model.Product{
		ID:          productID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		Active:      active,
	}
	if err := u.productRepo.Update(ctx, updated); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//直接の在庫編集は履歴を残す
	if in.Stock != p.Stock {
		adj := model.InventoryAdjustment{
			ProductID:   productID,
			ActorUserID: user.ID,
			Delta:       in.Stock - p.Stock,
			Reason:      "vendor stock edit",
		}
		if err := u.inventoryRepo.CreateAdjustment(ctx, adj); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return nil
}

func (u *VendorProductUsecase) DeleteProduct(ctx context.Context, username string, productID int64) error {
	_, vendor, err := u.resolveVendor(ctx, username)
	if err != nil {
		return err
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if p.VendorID == nil || *p.VendorID != vendor.ID {
		return NewHTTPError(http.StatusForbidden, "you don't have permission to delete this product")
	}

	//論理削除。過去注文の明細からは参照され続ける
	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
