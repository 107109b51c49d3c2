package handler

import (
	"net/http"
	"strconv"

	"github.com/JesusGGUNCC/Student-Made/internal/middleware"
	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 認証必須のルート
func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.detail)
	g.POST("/orders/:id/cancel", h.cancel)
}

// 管理側のルート
func (h *OrderHandler) RegisterAdminRoutes(g *echo.Group) {
	g.PATCH("/orders/:id/status", h.updateStatus)
}

type createOrderRequest struct {
	FirstName      string                   `json:"first_name"`
	LastName       string                   `json:"last_name"`
	Address1       string                   `json:"address1"`
	Address2       string                   `json:"address2"`
	Country        string                   `json:"country"`
	State          string                   `json:"state"`
	City           string                   `json:"city"`
	ZipCode        string                   `json:"zip_code"`
	PhoneNumber    string                   `json:"phone_number"`
	SubtotalAmount decimal.Decimal          `json:"subtotal_amount"`
	SalesTaxAmount decimal.Decimal          `json:"sales_tax_amount"`
	ShippingFee    decimal.Decimal          `json:"shipping_fee"`
	TotalAmount    decimal.Decimal          `json:"total_amount"`
	PaymentID      int64                    `json:"payment_id"`
	Products       []usecase.OrderItemInput `json:"products"`
}

func (h *OrderHandler) create(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Username:       username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Address1:       req.Address1,
		Address2:       req.Address2,
		Country:        req.Country,
		State:          req.State,
		City:           req.City,
		ZipCode:        req.ZipCode,
		PhoneNumber:    req.PhoneNumber,
		SubtotalAmount: req.SubtotalAmount,
		SalesTaxAmount: req.SalesTaxAmount,
		ShippingFee:    req.ShippingFee,
		TotalAmount:    req.TotalAmount,
		PaymentID:      req.PaymentID,
		Items:          req.Products,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), username)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	//adminは他人の注文も見られる
	requester := username
	if role, _ := c.Get(middleware.CtxUserRoleKey).(string); role == "admin" {
		requester = ""
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id, requester)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.CancelOrder(c.Request().Context(), id, username); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Order cancelled successfully"})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}

func getUsername(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUsernameKey)
	username, ok := v.(string)
	return username, ok && username != ""
}
