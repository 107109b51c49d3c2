package handler

import (
	"net/http"
	"strconv"

	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ベンダー向けの商品管理API（VendorRoleGuard配下）
type VendorProductHandler struct {
	uc *usecase.VendorProductUsecase
}

func NewVendorProductHandler(uc *usecase.VendorProductUsecase) *VendorProductHandler {
	return &VendorProductHandler{uc: uc}
}

func (h *VendorProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.POST("/products", h.add)
	g.POST("/products/bulk", h.bulkAdd)
	g.PATCH("/products/:id", h.update)
	g.DELETE("/products/:id", h.remove)
}

func (h *VendorProductHandler) list(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	products, err := h.uc.ListProducts(c.Request().Context(), username)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *VendorProductHandler) add(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.VendorProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddProduct(c.Request().Context(), username, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Product added successfully",
		"product_id": id,
	})
}

type bulkAddRequest struct {
	Products []usecase.VendorProductInput `json:"products"`
}

func (h *VendorProductHandler) bulkAdd(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req bulkAddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ids, err := h.uc.BulkAddProducts(c.Request().Context(), username, req.Products)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Products added successfully",
		"product_ids": ids,
	})
}

func (h *VendorProductHandler) update(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.VendorProductInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), username, id, req); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *VendorProductHandler) remove(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), username, id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
