package handler

import (
	"net/http"

	"ecokart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文確認画面のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// /orders 配下を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders/current", h.current)
}

func (h *OrderHandler) current(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetCurrentOrder(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
