package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"

	"github.com/lib/pq"
)

// 出店申請。pending → approved / rejected の単純な状態遷移で、
// 承認時にVendorを作ってuserのroleを引き上げる。
type VendorApplicationUsecase struct {
	appRepo    repo.VendorApplicationRepository
	vendorRepo repo.VendorRepository
	userRepo   repo.UserRepository
}

func NewVendorApplicationUsecase(
	appRepo repo.VendorApplicationRepository,
	vendorRepo repo.VendorRepository,
	userRepo repo.UserRepository,
) *VendorApplicationUsecase {
	return &VendorApplicationUsecase{
		appRepo:    appRepo,
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
	}
}

type VendorApplyInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	CompanyName  string   `json:"company_name"`
	Description  string   `json:"description"`
	ProductTypes []string `json:"product_types"`
	Username     string   `json:"username"`
}

func (u *VendorApplicationUsecase) Apply(ctx context.Context, in VendorApplyInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Description) == "" || len(in.ProductTypes) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	created, err := u.appRepo.Create(ctx, model.VendorApplication{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CompanyName:  in.CompanyName,
		Description:  in.Description,
		ProductTypes: pq.StringArray(in.ProductTypes),
		Status:       model.VendorApplicationPending,
		Username:     in.Username,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created.ID, nil
}

func (u *VendorApplicationUsecase) List(ctx context.Context, statusRaw string) ([]model.VendorApplication, error) {
	status := model.VendorApplicationStatus(strings.TrimSpace(statusRaw))
	switch status {
	case "", model.VendorApplicationPending, model.VendorApplicationApproved, model.VendorApplicationRejected:
	default:
		return nil, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	items, err := u.appRepo.List(ctx, status)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 申請者が自分の申請状況を見る
func (u *VendorApplicationUsecase) GetMyApplication(ctx context.Context, username string) (model.VendorApplication, error) {
	if strings.TrimSpace(username) == "" {
		return model.VendorApplication{}, NewHTTPError(http.StatusBadRequest, "username is required")
	}

	app, err := u.appRepo.FindByUsername(ctx, username)
	if err == repo.ErrNotFound {
		return model.VendorApplication{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.VendorApplication{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return app, nil
}

// Review は管理者の承認/却下。pendingのものだけ動かせる。
func (u *VendorApplicationUsecase) Review(ctx context.Context, applicationID int64, approve bool) error {
	if applicationID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	app, err := u.appRepo.FindByID(ctx, applicationID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if app.Status != model.VendorApplicationPending {
		return NewHTTPError(http.StatusConflict, "application already reviewed")
	}

	if !approve {
		if err := u.appRepo.UpdateStatus(ctx, applicationID, model.VendorApplicationRejected); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}

	//承認: vendor作成 + role引き上げ + status更新
	if _, err := u.vendorRepo.Create(ctx, model.Vendor{
		Name:        app.Name,
		Email:       app.Email,
		Phone:       app.Phone,
		CompanyName: app.CompanyName,
		Description: app.Description,
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if app.Username != "" {
		if err := u.userRepo.UpdateRole(ctx, app.Username, model.RoleVendor); err != nil && err != repo.ErrNotFound {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, model.VendorApplicationApproved); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
