package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	catalog repo.CatalogRepository
	browse  repo.BrowseStateRepository
}

// DI
func NewProductUsecase(catalog repo.CatalogRepository, browse repo.BrowseStateRepository) *ProductUsecase {
	return &ProductUsecase{catalog: catalog, browse: browse}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// ListProducts はカタログの商品一覧を返す。category は "all"/空で絞り込みなし。
func (u *ProductUsecase) ListProducts(ctx context.Context, category string) (ProductListOutput, error) {
	products, err := u.catalog.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
	}

	items := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		items = append(items, p)
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

// ListFeatured は featured: true の商品だけを返す。
func (u *ProductUsecase) ListFeatured(ctx context.Context) (ProductListOutput, error) {
	products, err := u.catalog.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
	}

	items := make([]model.Product, 0)
	for _, p := range products {
		if p.Featured {
			items = append(items, p)
		}
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
	}
	return p, nil
}

// SelectProduct は詳細表示用の遷移ヒント（currentProductId）を保存する。
func (u *ProductUsecase) SelectProduct(ctx context.Context, sessionID string, productID int64) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if _, err := u.GetProductDetail(ctx, productID); err != nil {
		return err
	}

	if err := u.browse.SetCurrentProductID(ctx, sessionID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

// CurrentProduct は遷移ヒントが指す商品を返す。ヒントが無ければ404。
func (u *ProductUsecase) CurrentProduct(ctx context.Context, sessionID string) (model.Product, error) {
	if sessionID == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := u.browse.CurrentProductID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return u.GetProductDetail(ctx, id)
}
