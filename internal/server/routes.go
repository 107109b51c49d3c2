package server

import (
	"github.com/JesusGGUNCC/Student-Made/internal/config"
	"github.com/JesusGGUNCC/Student-Made/internal/handler"
	"github.com/JesusGGUNCC/Student-Made/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Order         *handler.OrderHandler
	Stock         *handler.StockHandler
	Payment       *handler.PaymentHandler
	VendorProduct *handler.VendorProductHandler
	VendorApp     *handler.VendorApplicationHandler
	Upload        *handler.UploadHandler
}

// RegisterRoutes は全ルートを登録する。
// 公開 / 認証必須 / vendor / admin の4段構え
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	authed := e.Group("", middleware.AuthJWT(cfg))
	vendor := e.Group("/vendor", middleware.AuthJWT(cfg), middleware.VendorRoleGuard())
	admin := e.Group("/admin", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())

	h.Auth.RegisterRoutes(e, authed)
	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(authed)
	h.Order.RegisterAdminRoutes(admin)
	h.Stock.RegisterRoutes(e, authed)
	h.Payment.RegisterRoutes(authed)
	h.VendorProduct.RegisterRoutes(vendor)
	h.VendorApp.RegisterRoutes(authed, admin)
	h.Upload.RegisterRoutes(e, authed)
}
