package main

import (
	"ecokart/internal/config"
	"ecokart/internal/handler"
	"ecokart/internal/infra/catalog"
	"ecokart/internal/infra/db"
	"ecokart/internal/infra/kv"
	infraRepo "ecokart/internal/infra/repository"
	repo "ecokart/internal/repository"
	"ecokart/internal/server"
	"ecokart/internal/usecase"
	"ecokart/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .env（無ければ環境変数だけで動かす）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続とKVテーブルのマイグレーション
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&kv.Entry{}); err != nil {
		panic(err)
	}

	store := kv.NewGormStore(gormDB)

	//カタログはURL優先、無ければローカルファイル
	var catalogRepo repo.CatalogRepository
	if cfg.CatalogURL != "" {
		catalogRepo = catalog.NewHTTPCatalog(cfg.CatalogURL)
	} else {
		catalogRepo = catalog.NewFileCatalog(cfg.CatalogPath)
	}

	//Repository（KV実装）生成
	cartRepo := infraRepo.NewCartKVRepository(store)
	wishlistRepo := infraRepo.NewWishlistKVRepository(store)
	orderRepo := infraRepo.NewOrderKVRepository(store)
	browseRepo := infraRepo.NewBrowseStateKVRepository(store)

	//Usecase生成
	productUC := usecase.NewProductUsecase(catalogRepo, browseRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, catalogRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, cartRepo, catalogRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, orderRepo, validator.NewCheckoutValidator())
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	h := server.Handlers{
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Wishlist: handler.NewWishlistHandler(wishlistUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Order:    handler.NewOrderHandler(orderUC),
	}

	//Server起動
	if err := server.Start(cfg, h); err != nil {
		panic(err)
	}
}
