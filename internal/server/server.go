package server

import (
	"ecokart/internal/config"
	"ecokart/internal/handler"
	"ecokart/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
}

// Start はechoサーバーを組み立てて起動する。
func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))
	e.Use(middleware.Session(cfg))

	RegisterRoutes(e, h)

	return e.Start(":" + cfg.Port)
}
