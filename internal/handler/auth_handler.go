package handler

import (
	"net/http"

	"github.com/JesusGGUNCC/Student-Made/internal/usecase"
	"github.com/JesusGGUNCC/Student-Made/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authed *echo.Group) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	authed.GET("/auth/me", h.me)
}

// RegisterはPOST /auth/registerのハンドラ
func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.AuthRegisterRequest
	if err := c.Bind(&req); err != nil {
		return authWriteError(c, http.StatusBadRequest, "validation error")
	}

	out, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return authWriteUsecaseError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// LoginはPOST /auth/loginのハンドラ
func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return authWriteError(c, http.StatusBadRequest, "validation error")
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return authWriteUsecaseError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) me(c echo.Context) error {
	username, ok := getUsername(c)
	if !ok {
		return authWriteError(c, http.StatusUnauthorized, "unauthorized")
	}

	dto, err := h.uc.Me(c.Request().Context(), username)
	if err != nil {
		return authWriteUsecaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto)
}

func authWriteError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// validatorのエラーも含めてstatusに変換する
func authWriteUsecaseError(c echo.Context, err error) error {
	switch err {
	case validator.ErrInvalidInput, usecase.ErrValidation:
		return authWriteError(c, http.StatusBadRequest, "validation error")
	case validator.ErrUsernameAlreadyUsed:
		return authWriteError(c, http.StatusConflict, "username already used")
	case validator.ErrEmailAlreadyUsed:
		return authWriteError(c, http.StatusConflict, "email already used")
	case usecase.ErrUnauthorized:
		return authWriteError(c, http.StatusUnauthorized, "invalid credentials")
	case usecase.ErrForbidden:
		return authWriteError(c, http.StatusForbidden, "forbidden")
	case usecase.ErrConflict:
		return authWriteError(c, http.StatusConflict, "conflict")
	default:
		return authWriteError(c, http.StatusInternalServerError, "internal error")
	}
}
