package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"
	"ecokart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Coffee Beans", Price: 500, Category: "kitchen", Featured: true},
		{ID: 2, Name: "Steel Bottle", Price: 250, Category: "outdoor"},
		{ID: 3, Name: "Bamboo Brush", Price: 120, Category: "kitchen"},
	}
}

func TestProductUsecase_ListProducts_All(t *testing.T) {
	ctx := context.Background()

	catalog := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(catalog, new(BrowseStateRepoMock))

	catalog.On("List", mock.Anything).Return(sampleCatalog(), nil)

	out, err := uc.ListProducts(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 3, out.Total)

	// "all" も絞り込みなし
	out, err = uc.ListProducts(ctx, "all")
	assert.NoError(t, err)
	assert.Equal(t, 3, out.Total)
}

func TestProductUsecase_ListProducts_ByCategory(t *testing.T) {
	ctx := context.Background()

	catalog := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(catalog, new(BrowseStateRepoMock))

	catalog.On("List", mock.Anything).Return(sampleCatalog(), nil)

	out, err := uc.ListProducts(ctx, "kitchen")
	assert.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Coffee Beans", out.Items[0].Name)
	assert.Equal(t, "Bamboo Brush", out.Items[1].Name)

	// 存在しないカテゴリは空リスト
	out, err = uc.ListProducts(ctx, "garage")
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Total)
}

func TestProductUsecase_ListProducts_CatalogUnavailable(t *testing.T) {
	catalog := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(catalog, new(BrowseStateRepoMock))

	catalog.On("List", mock.Anything).Return(nil, errors.New("read error"))

	_, err := uc.ListProducts(context.Background(), "")
	assertHTTPError(t, err, http.StatusServiceUnavailable, "catalog unavailable")
}

func TestProductUsecase_ListFeatured(t *testing.T) {
	catalog := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(catalog, new(BrowseStateRepoMock))

	catalog.On("List", mock.Anything).Return(sampleCatalog(), nil)

	out, err := uc.ListFeatured(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, int64(1), out.Items[0].ID)
}

func TestProductUsecase_GetProductDetail(t *testing.T) {
	ctx := context.Background()

	catalog := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(catalog, new(BrowseStateRepoMock))

	catalog.On("FindByID", mock.Anything, int64(2)).Return(sampleCatalog()[1], nil)
	catalog.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	p, err := uc.GetProductDetail(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Steel Bottle", p.Name)

	_, err = uc.GetProductDetail(ctx, 99)
	assertHTTPError(t, err, http.StatusNotFound, "not found")

	_, err = uc.GetProductDetail(ctx, 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product id")
}

// 遷移ヒントの保存と参照の往復。
func TestProductUsecase_SelectThenCurrent(t *testing.T) {
	ctx := context.Background()

	catalog := new(CatalogRepoMock)
	browse := new(BrowseStateRepoMock)
	uc := usecase.NewProductUsecase(catalog, browse)

	catalog.On("FindByID", mock.Anything, int64(2)).Return(sampleCatalog()[1], nil)
	browse.On("SetCurrentProductID", mock.Anything, sid, int64(2)).Return(nil)
	browse.On("CurrentProductID", mock.Anything, sid).Return(int64(2), nil)

	assert.NoError(t, uc.SelectProduct(ctx, sid, 2))

	p, err := uc.CurrentProduct(ctx, sid)
	assert.NoError(t, err)
	assert.Equal(t, "Steel Bottle", p.Name)

	browse.AssertExpectations(t)
}

// カタログに無い商品は選択できない（ヒントも書かない）。
func TestProductUsecase_SelectProduct_UnknownProduct(t *testing.T) {
	catalog := new(CatalogRepoMock)
	browse := new(BrowseStateRepoMock)
	uc := usecase.NewProductUsecase(catalog, browse)

	catalog.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.SelectProduct(context.Background(), sid, 99)
	assertHTTPError(t, err, http.StatusNotFound, "not found")

	browse.AssertNotCalled(t, "SetCurrentProductID", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_CurrentProduct_NoHint(t *testing.T) {
	catalog := new(CatalogRepoMock)
	browse := new(BrowseStateRepoMock)
	uc := usecase.NewProductUsecase(catalog, browse)

	browse.On("CurrentProductID", mock.Anything, sid).Return(int64(0), repo.ErrNotFound)

	_, err := uc.CurrentProduct(context.Background(), sid)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}
