package handler

import (
	"net/http"
	"strconv"

	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/payments", h.list)
	g.POST("/payments", h.create)
	g.DELETE("/payments/:id", h.remove)
}

func (h *PaymentHandler) list(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return payWriteError(c, http.StatusUnauthorized, "unauthorized")
	}

	list, err := h.uc.List(c.Request().Context(), username)
	if err != nil {
		return payWriteUsecaseError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *PaymentHandler) create(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return payWriteError(c, http.StatusUnauthorized, "unauthorized")
	}

	var req usecase.PaymentCreateRequest
	if err := c.Bind(&req); err != nil {
		return payWriteError(c, http.StatusBadRequest, "validation error")
	}

	created, err := h.uc.Create(c.Request().Context(), username, req)
	if err != nil {
		return payWriteUsecaseError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *PaymentHandler) remove(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return payWriteError(c, http.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return payWriteError(c, http.StatusBadRequest, "validation error")
	}

	if err := h.uc.Delete(c.Request().Context(), username, id); err != nil {
		return payWriteUsecaseError(c, err)
	}

	// Success は {message:string} に寄せる
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

// ------- PaymentHandler専用 helper（既存と衝突しないように prefix 付き） -------

func payWriteError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

func payWriteUsecaseError(c echo.Context, err error) error {
	switch err {
	case usecase.ErrValidation:
		return payWriteError(c, http.StatusBadRequest, "validation error")
	case usecase.ErrUnauthorized:
		return payWriteError(c, http.StatusUnauthorized, "unauthorized")
	case usecase.ErrForbidden:
		return payWriteError(c, http.StatusForbidden, "forbidden")
	case usecase.ErrConflict:
		return payWriteError(c, http.StatusConflict, "conflict")
	case usecase.ErrNotFound:
		return payWriteError(c, http.StatusNotFound, "not found")
	default:
		return payWriteError(c, http.StatusInternalServerError, "internal error")
	}
}
