package main

import (
	"log"

	"github.com/JesusGGUNCC/Student-Made/internal/config"
	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	"github.com/JesusGGUNCC/Student-Made/internal/handler"
	"github.com/JesusGGUNCC/Student-Made/internal/infra/db"
	infraRepo "github.com/JesusGGUNCC/Student-Made/internal/infra/repository"
	"github.com/JesusGGUNCC/Student-Made/internal/server"
	"github.com/JesusGGUNCC/Student-Made/internal/usecase"
	"github.com/JesusGGUNCC/Student-Made/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envはローカル用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vendor{},
		&model.VendorApplication{},
		&model.Payment{},
		&model.Product{},
		&model.Order{},
		&model.OrderDetail{},
		&model.InventoryAdjustment{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	vendorRepo := infraRepo.NewVendorGormRepository(gormDB)
	vendorAppRepo := infraRepo.NewVendorApplicationGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	stockUC := usecase.NewStockUsecase(productRepo, inventoryRepo)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo)
	vendorProductUC := usecase.NewVendorProductUsecase(userRepo, vendorRepo, productRepo, inventoryRepo)
	vendorAppUC := usecase.NewVendorApplicationUsecase(vendorAppRepo, vendorRepo, userRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Product:       handler.NewProductHandler(productUC),
		Order:         handler.NewOrderHandler(orderUC),
		Stock:         handler.NewStockHandler(stockUC),
		Payment:       handler.NewPaymentHandler(paymentUC),
		VendorProduct: handler.NewVendorProductHandler(vendorProductUC),
		VendorApp:     handler.NewVendorApplicationHandler(vendorAppUC),
		Upload:        handler.NewUploadHandler(cfg.UploadDir),
	}

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, handlers)

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
