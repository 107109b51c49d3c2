package handler

import (
	"net/http"

	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート検証と一括在庫操作のAPI
type StockHandler struct {
	uc *usecase.StockUsecase
}

func NewStockHandler(uc *usecase.StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// verifyは公開（カート画面から叩く）、debit/restoreは認証必須
func (h *StockHandler) RegisterRoutes(e *echo.Echo, authed *echo.Group) {
	e.POST("/stock/verify", h.verify)
	authed.POST("/stock/debit", h.debit)
	authed.POST("/stock/restore", h.restore)
}

type stockRequest struct {
	Items []usecase.StockItemInput `json:"items"`
}

func (h *StockHandler) verify(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "items is required"})
	}

	out, err := h.uc.VerifyStock(c.Request().Context(), req.Items)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) debit(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "items is required"})
	}

	out, err := h.uc.DebitStock(c.Request().Context(), req.Items)
	if err != nil {
		return writeError(c, err)
	}

	//一部失敗は207ではなく200で返し、bodyで判断してもらう
	return c.JSON(http.StatusOK, out)
}

func (h *StockHandler) restore(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "items is required"})
	}

	out, err := h.uc.RestoreStock(c.Request().Context(), req.Items)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
