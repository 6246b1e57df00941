package handler

import (
	"net/http"

	"ecokart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type ValidateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// /checkout 配下を登録
func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.placeOrder)
	e.POST("/checkout/validate", h.validateField)
}

func (h *CheckoutHandler) placeOrder(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var form usecase.CheckoutForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), sid, form)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// 入力中の助言的検証。送信はブロックしない。
func (h *CheckoutHandler) validateField(c echo.Context) error {
	var req ValidateFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Field == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "field required"})
	}

	return c.JSON(http.StatusOK, h.uc.ValidateField(req.Field, req.Value))
}
