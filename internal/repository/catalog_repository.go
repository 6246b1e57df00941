package repository

import (
	"context"
	"errors"

	"ecokart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品カタログ（読み取り専用）。取得失敗は固定されたままになり、リトライしない。
type CatalogRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
