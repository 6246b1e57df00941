package usecase_test

import (
	"context"
	"testing"

	"ecokart/internal/domain/model"
	"ecokart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	args := m.Called(ctx, sessionID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	args := m.Called(ctx, sessionID, lines)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) Load(ctx context.Context, sessionID string) ([]model.WishlistEntry, error) {
	args := m.Called(ctx, sessionID)
	entries, _ := args.Get(0).([]model.WishlistEntry)
	return entries, args.Error(1)
}

func (m *WishlistRepoMock) Save(ctx context.Context, sessionID string, entries []model.WishlistEntry) error {
	args := m.Called(ctx, sessionID, entries)
	return args.Error(0)
}

func (m *WishlistRepoMock) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) SaveCurrent(ctx context.Context, sessionID string, o model.Order) error {
	args := m.Called(ctx, sessionID, o)
	return args.Error(0)
}

func (m *OrderRepoMock) FindCurrent(ctx context.Context, sessionID string) (model.Order, error) {
	args := m.Called(ctx, sessionID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ClearCurrent(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *CatalogRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type BrowseStateRepoMock struct{ mock.Mock }

func (m *BrowseStateRepoMock) SetCurrentProductID(ctx context.Context, sessionID string, productID int64) error {
	args := m.Called(ctx, sessionID, productID)
	return args.Error(0)
}

func (m *BrowseStateRepoMock) CurrentProductID(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}
