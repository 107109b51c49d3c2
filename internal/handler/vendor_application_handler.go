package handler

import (
	"net/http"
	"strconv"

	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 出店申請API。applyは認証ユーザー、審査はadminのみ
type VendorApplicationHandler struct {
	uc *usecase.VendorApplicationUsecase
}

func NewVendorApplicationHandler(uc *usecase.VendorApplicationUsecase) *VendorApplicationHandler {
	return &VendorApplicationHandler{uc: uc}
}

func (h *VendorApplicationHandler) RegisterRoutes(authed *echo.Group, admin *echo.Group) {
	authed.POST("/vendor/apply", h.apply)
	authed.GET("/vendor/application", h.myApplication)

	admin.GET("/vendor-applications", h.list)
	admin.POST("/vendor-applications/:id/approve", h.approve)
	admin.POST("/vendor-applications/:id/reject", h.reject)
}

func (h *VendorApplicationHandler) apply(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.VendorApplyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.Username = username

	id, err := h.uc.Apply(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":        "Application submitted successfully",
		"application_id": id,
	})
}

func (h *VendorApplicationHandler) myApplication(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	app, err := h.uc.GetMyApplication(c.Request().Context(), username)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, app)
}

func (h *VendorApplicationHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *VendorApplicationHandler) approve(c echo.Context) error {
	return h.review(c, true)
}

func (h *VendorApplicationHandler) reject(c echo.Context) error {
	return h.review(c, false)
}

func (h *VendorApplicationHandler) review(c echo.Context, approve bool) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Review(c.Request().Context(), id, approve); err != nil {
		return writeError(c, err)
	}

	msg := "Application rejected"
	if approve {
		msg = "Application approved"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg})
}
