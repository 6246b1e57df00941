package usecase

import (
	"context"
	"math"
	"net/http"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"

	"github.com/labstack/gommon/log"
)

// 配送料（カートが空でなければ一律）と税率。
const (
	ShippingFlatRate = 100.0
	TaxRate          = 0.18
)

// CartUsecase はカートの業務ロジック。
// 商品IDごとに明細は高々1つ、数量が0以下の明細は保存しない。
type CartUsecase struct {
	cartRepo repo.CartRepository
	catalog  repo.CatalogRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, catalog repo.CatalogRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, catalog: catalog}
}

type CartLineResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type CartResponse struct {
	Items  []CartLineResponse `json:"items"`
	Totals CartTotals         `json:"totals"`
	// バッジ表示用の数量合計
	ItemCount int64 `json:"item_count"`
}

type AddCartInput struct {
	ProductID int64
	// 省略時は1
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildCartResponse(lines), nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// カタログに無い商品IDはログだけ残して無視する。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	p, err := u.catalog.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		log.Warnf("cart: unknown product id %d, ignoring", in.ProductID)
		return buildCartResponse(lines), nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
	}

	// 既存明細があれば加算、無ければ追加時点のスナップショットで新規作成
	merged := false
	for i := range lines {
		if lines[i].ProductID == in.ProductID {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, model.NewCartLine(p, qty))
	}

	if err := u.cartRepo.Save(ctx, sessionID, lines); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildCartResponse(lines), nil
}

// UpdateQuantity は数量を上書きする。0以下は削除扱い、無い商品IDは何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if qty <= 0 {
		return u.RemoveFromCart(ctx, sessionID, productID)
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	changed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			changed = true
			break
		}
	}
	if !changed {
		return buildCartResponse(lines), nil
	}

	if err := u.cartRepo.Save(ctx, sessionID, lines); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildCartResponse(lines), nil
}

// RemoveFromCart は明細を削除する。無くても成功扱い。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	kept := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}

	if err := u.cartRepo.Save(ctx, sessionID, kept); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildCartResponse(kept), nil
}

// Totals は合計を生の値で計算する。丸めは表示用DTOを作るときだけ。
func Totals(lines []model.CartLine) CartTotals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}

	var shipping float64
	if len(lines) > 0 {
		shipping = ShippingFlatRate
	}

	tax := subtotal * TaxRate
	return CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func buildCartResponse(lines []model.CartLine) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	var count int64

	for _, l := range lines {
		items = append(items, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Category:  l.Category,
			Quantity:  l.Quantity,
			LineTotal: round2(l.Price * float64(l.Quantity)),
		})
		count += l.Quantity
	}

	t := Totals(lines)
	return CartResponse{
		Items: items,
		Totals: CartTotals{
			Subtotal: round2(t.Subtotal),
			Shipping: round2(t.Shipping),
			Tax:      round2(t.Tax),
			Total:    round2(t.Total),
		},
		ItemCount: count,
	}
}
