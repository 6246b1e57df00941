package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"ecokart/internal/domain/model"
	"ecokart/internal/usecase"
	"ecokart/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validForm() usecase.CheckoutForm {
	return usecase.CheckoutForm{
		FirstName:  "Asha",
		LastName:   "Rao",
		Email:      "asha@example.com",
		Phone:      "98765 43210",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		State:      "KA",
		Zip:        "560001",
		CardNumber: "1234 5678 9012 3456",
		Expiry:     "09/27",
		CVV:        "123",
	}
}

func twoLineCart() []model.CartLine {
	return []model.CartLine{
		{ProductID: 1, Name: "A", Price: 500, Quantity: 2},
		{ProductID: 2, Name: "B", Price: 250, Quantity: 1},
	}
}

func newCheckoutUsecase(cartRepo *CartRepoMock, orderRepo *OrderRepoMock) *usecase.CheckoutUsecase {
	return usecase.NewCheckoutUsecase(cartRepo, orderRepo, validator.NewCheckoutValidator())
}

func TestCheckoutUsecase_PlaceOrder_Success(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCheckoutUsecase(cartRepo, orderRepo)

	cartRepo.On("Load", mock.Anything, sid).Return(twoLineCart(), nil)
	orderRepo.On("SaveCurrent", mock.Anything, sid, mock.MatchedBy(func(o model.Order) bool {
		return len(o.Items) == 2 &&
			o.Subtotal == 1250 &&
			o.Shipping == 100 &&
			o.Tax == 225 &&
			o.Total == 1575 &&
			o.Email == "asha@example.com"
	})).Return(nil)
	cartRepo.On("Clear", mock.Anything, sid).Return(nil)

	out, err := uc.PlaceOrder(ctx, sid, validForm())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, 1250.0, out.Subtotal)
	assert.Equal(t, 100.0, out.Shipping)
	assert.Equal(t, 225.0, out.Tax)
	assert.Equal(t, 1575.0, out.Total)

	// 注文番号は ECO + 6桁 + 2桁
	assert.Regexp(t, regexp.MustCompile(`^ECO\d{8}$`), out.OrderNumber)

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

// 空カートでは注文できない。
func TestCheckoutUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCheckoutUsecase(cartRepo, orderRepo)

	cartRepo.On("Load", mock.Anything, sid).Return([]model.CartLine{}, nil)

	_, err := uc.PlaceOrder(ctx, sid, validForm())
	assertHTTPError(t, err, http.StatusBadRequest, "cart empty")

	orderRepo.AssertNotCalled(t, "SaveCurrent", mock.Anything, mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

// 1フィールドでも不正なら注文は組み立てられない（送信ブロック）。
func TestCheckoutUsecase_PlaceOrder_InvalidEmailBlocks(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCheckoutUsecase(cartRepo, orderRepo)

	form := validForm()
	form.Email = "abc"

	_, err := uc.PlaceOrder(ctx, sid, form)

	ve, ok := usecase.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	assert.Equal(t, "Please enter a valid email address.", ve.Fields["email"])

	cartRepo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "SaveCurrent", mock.Anything, mock.Anything, mock.Anything)
}

// 空の必須フィールドは種別ルールではなく汎用のrequiredメッセージになる。
func TestCheckoutUsecase_PlaceOrder_MissingFieldsReportedPerField(t *testing.T) {
	ctx := context.Background()

	uc := newCheckoutUsecase(new(CartRepoMock), new(OrderRepoMock))

	form := validForm()
	form.Email = ""
	form.CVV = ""

	_, err := uc.PlaceOrder(ctx, sid, form)

	ve, ok := usecase.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	assert.Equal(t, 2, len(ve.Fields))
	assert.Equal(t, "This field is required.", ve.Fields["email"])
	assert.Equal(t, "This field is required.", ve.Fields["cvv"])
}

// カード情報はOrderに保存されない。
func TestCheckoutUsecase_PlaceOrder_DoesNotPersistCardData(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCheckoutUsecase(cartRepo, orderRepo)

	var saved model.Order
	cartRepo.On("Load", mock.Anything, sid).Return(twoLineCart(), nil)
	orderRepo.On("SaveCurrent", mock.Anything, sid, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(model.Order) }).
		Return(nil)
	cartRepo.On("Clear", mock.Anything, sid).Return(nil)

	_, err := uc.PlaceOrder(ctx, sid, validForm())
	assert.NoError(t, err)

	raw, err := json.Marshal(saved)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "cardNumber")
	assert.NotContains(t, string(raw), "cvv")
	assert.Equal(t, "Asha", saved.FirstName)
	assert.Equal(t, "560001", saved.Zip)
}

func TestCheckoutUsecase_ValidateField_Advisory(t *testing.T) {
	uc := newCheckoutUsecase(new(CartRepoMock), new(OrderRepoMock))

	res := uc.ValidateField("expiry", "13/25")
	assert.False(t, res.Valid)
	assert.Equal(t, "Please enter a valid expiry date (MM/YY).", res.Message)

	res = uc.ValidateField("expiry", "09/27")
	assert.True(t, res.Valid)
}
