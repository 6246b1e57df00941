package usecase

import (
	"context"
	"net/http"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"

	"github.com/labstack/gommon/log"
)

// WishlistUsecase はウィッシュリストの業務ロジック。
// 商品IDをキーにした集合で、同じIDのエントリは高々1つ。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	cartRepo     repo.CartRepository
	catalog      repo.CatalogRepository
}

// DI
func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	cartRepo repo.CartRepository,
	catalog repo.CatalogRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		cartRepo:     cartRepo,
		catalog:      catalog,
	}
}

type WishlistEntryResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

type WishlistResponse struct {
	Items []WishlistEntryResponse `json:"items"`
	Total int                     `json:"total"`
}

// TransferOutput は一括移動の結果。
type TransferOutput struct {
	Moved int `json:"moved"`
	// 移動後のカートの数量合計（バッジ表示用）
	CartItemCount int64 `json:"cart_item_count"`
}

func (u *WishlistUsecase) GetWishlist(ctx context.Context, sessionID string) (WishlistResponse, error) {
	if sessionID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	entries, err := u.wishlistRepo.Load(ctx, sessionID)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildWishlistResponse(entries), nil
}

// Toggle は既にあれば削除、無ければスナップショットを追加する。
// カタログに無い商品IDはログだけ残して無視する。
func (u *WishlistUsecase) Toggle(ctx context.Context, sessionID string, productID int64) (WishlistResponse, error) {
	if sessionID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return WishlistResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	entries, err := u.wishlistRepo.Load(ctx, sessionID)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	kept := make([]model.WishlistEntry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if e.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}

	if !removed {
		p, err := u.catalog.FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			log.Warnf("wishlist: unknown product id %d, ignoring", productID)
			return buildWishlistResponse(entries), nil
		}
		if err != nil {
			return WishlistResponse{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
		}
		kept = append(kept, model.NewWishlistEntry(p))
	}

	if err := u.wishlistRepo.Save(ctx, sessionID, kept); err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildWishlistResponse(kept), nil
}

// Remove はエントリを削除する。無くても成功扱い。
func (u *WishlistUsecase) Remove(ctx context.Context, sessionID string, productID int64) (WishlistResponse, error) {
	if sessionID == "" {
		return WishlistResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return WishlistResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	entries, err := u.wishlistRepo.Load(ctx, sessionID)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	kept := make([]model.WishlistEntry, 0, len(entries))
	for _, e := range entries {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}

	if err := u.wishlistRepo.Save(ctx, sessionID, kept); err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return buildWishlistResponse(kept), nil
}

// TransferAllToCart は全エントリをカートへ移す。
// 既にカートにある商品は数量+1（上書きではなくマージ）、その後ウィッシュリストを空にする。
func (u *WishlistUsecase) TransferAllToCart(ctx context.Context, sessionID string) (TransferOutput, error) {
	if sessionID == "" {
		return TransferOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	entries, err := u.wishlistRepo.Load(ctx, sessionID)
	if err != nil {
		return TransferOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	lines, err := u.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return TransferOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	for _, e := range entries {
		merged := false
		for i := range lines {
			if lines[i].ProductID == e.ProductID {
				lines[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, e.CartLine())
		}
	}

	if err := u.cartRepo.Save(ctx, sessionID, lines); err != nil {
		return TransferOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	if err := u.wishlistRepo.Clear(ctx, sessionID); err != nil {
		return TransferOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	var count int64
	for _, l := range lines {
		count += l.Quantity
	}
	return TransferOutput{Moved: len(entries), CartItemCount: count}, nil
}

func buildWishlistResponse(entries []model.WishlistEntry) WishlistResponse {
	items := make([]WishlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, WishlistEntryResponse{
			ProductID: e.ProductID,
			Name:      e.Name,
			Price:     e.Price,
			Image:     e.Image,
			Category:  e.Category,
		})
	}
	return WishlistResponse{Items: items, Total: len(items)}
}
