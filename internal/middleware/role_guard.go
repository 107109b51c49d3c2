package middleware

import (
	"net/http"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//adminだけ許可
			if role != string(model.RoleAdmin) {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}

func VendorRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//vendor本人かadmin
			if role != string(model.RoleVendor) && role != string(model.RoleAdmin) {
				return c.JSON(http.StatusForbidden, errorJSON("vendor only"))
			}

			return next(c)
		}
	}
}
