package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"
)

// usecaseがValidator interfaceに依存する約束。
type CheckoutValidator interface {
	Validate(field string, value string) FieldResult
}

// 1フィールドの検証結果。
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationError はフィールド別のメッセージを運ぶ。
// これが返る限りOrder Assemblerは呼ばれない（送信ブロック）。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// チェックアウトフォーム。全フィールド必須。
type CheckoutForm struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// fields はフォームの検証対象を画面上の並び順で返す。
func (f CheckoutForm) fields() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"zip", f.Zip},
		{"cardNumber", f.CardNumber},
		{"expiry", f.Expiry},
		{"cvv", f.CVV},
	}
}

type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type OrderResponse struct {
	OrderNumber string              `json:"order_number"`
	OrderDate   time.Time           `json:"order_date"`
	Items       []OrderItemResponse `json:"items"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CheckoutUsecase は注文確定（Order Assembler）。
// カード情報は検証するだけで、Orderには保存しない。
type CheckoutUsecase struct {
	cartRepo  repo.CartRepository
	orderRepo repo.OrderRepository
	validator CheckoutValidator
}

// DI
func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	validator CheckoutValidator,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		validator: validator,
	}
}

// ValidateField は入力中の助言的検証。送信はブロックしない。
func (u *CheckoutUsecase) ValidateField(field string, value string) FieldResult {
	return u.validator.Validate(field, value)
}

// PlaceOrder は全フィールドを検証し、カートのスナップショットからOrderを組み立てて
// currentOrderに保存し、カートを空にする。ウィッシュリストには触れない。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (OrderResponse, error) {
	if sessionID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 送信時の検証は全フィールド必須（ブロッキング）
	fieldErrs := map[string]string{}
	for _, f := range form.fields() {
		if res := u.validator.Validate(f.Name, f.Value); !res.Valid {
			fieldErrs[f.Name] = res.Message
		}
	}
	if len(fieldErrs) > 0 {
		return OrderResponse{}, &ValidationError{Fields: fieldErrs}
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	if len(lines) == 0 {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// カートと構造を共有しない値コピー
	items := make([]model.CartLine, len(lines))
	copy(items, lines)

	now := time.Now()
	t := Totals(lines)

	order := model.Order{
		OrderNumber: generateOrderNumber(now),
		OrderDate:   now,
		Items:       items,

		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		State:     form.State,
		Zip:       form.Zip,

		Subtotal: t.Subtotal,
		Shipping: t.Shipping,
		Tax:      t.Tax,
		Total:    t.Total,
	}

	if err := u.orderRepo.SaveCurrent(ctx, sessionID, order); err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	if err := u.cartRepo.Clear(ctx, sessionID); err != nil {
		return OrderResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return toOrderResponse(order), nil
}

// 'ECO' + unixミリ秒の下6桁 + 乱数2桁。
// 衝突は検出しない（元仕様どおりの許容済みの制限）。
func generateOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return "ECO" + millis[len(millis)-6:] + fmt.Sprintf("%02d", rand.IntN(100))
}

func toOrderResponse(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Category:  it.Category,
			Quantity:  it.Quantity,
			LineTotal: round2(it.Price * float64(it.Quantity)),
		})
	}

	return OrderResponse{
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate,
		Items:       items,

		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		City:      o.City,
		State:     o.State,
		Zip:       o.Zip,

		Subtotal: round2(o.Subtotal),
		Shipping: round2(o.Shipping),
		Tax:      round2(o.Tax),
		Total:    round2(o.Total),
	}
}
