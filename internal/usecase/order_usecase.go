package usecase

import (
	"context"
	"math"
	"net/http"
	"time"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"
)

// OrderUsecase は注文確認画面のデータ組み立て。
type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// お届け予定（注文日の5〜7営業日後を目安にした幅）。
type DeliveryEstimate struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// 環境インパクトの目安値。
type EcoImpact struct {
	PlasticItemsSaved int64   `json:"plastic_items_saved"`
	CO2SavedLbs       float64 `json:"co2_saved_lbs"`
	TreesHelped       int64   `json:"trees_helped"`
}

type ConfirmationResponse struct {
	Order            OrderResponse    `json:"order"`
	DeliveryEstimate DeliveryEstimate `json:"delivery_estimate"`
	EcoImpact        EcoImpact        `json:"eco_impact"`
}

// GetCurrentOrder は直近の注文を返す。未保存・期限切れは404。
func (u *OrderUsecase) GetCurrentOrder(ctx context.Context, sessionID string) (ConfirmationResponse, error) {
	if sessionID == "" {
		return ConfirmationResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	o, err := u.orderRepo.FindCurrent(ctx, sessionID)
	if err == repo.ErrNotFound {
		return ConfirmationResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ConfirmationResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return ConfirmationResponse{
		Order:            toOrderResponse(o),
		DeliveryEstimate: deliveryEstimate(o.OrderDate),
		EcoImpact:        ecoImpact(o.Items),
	}, nil
}

func deliveryEstimate(orderDate time.Time) DeliveryEstimate {
	return DeliveryEstimate{
		From: orderDate.AddDate(0, 0, 5),
		To:   orderDate.AddDate(0, 0, 7),
	}
}

// 商品1点あたり プラスチック2個・CO2 1.5lbs・樹木0.3本の換算。
func ecoImpact(items []model.CartLine) EcoImpact {
	var totalItems int64
	for _, it := range items {
		totalItems += it.Quantity
	}

	return EcoImpact{
		PlasticItemsSaved: totalItems * 2,
		CO2SavedLbs:       round2(float64(totalItems) * 1.5),
		TreesHelped:       int64(math.Ceil(float64(totalItems) * 0.3)),
	}
}
