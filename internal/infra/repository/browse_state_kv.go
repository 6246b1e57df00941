package repository

import (
	"context"
	"strconv"

	repo "ecokart/internal/repository"
)

const currentProductIDKey = "currentProductId"

// 画面遷移ヒント（currentProductId）をKVストアに持つ。
type BrowseStateKVRepository struct {
	kv repo.KVStore
}

// DI
func NewBrowseStateKVRepository(kv repo.KVStore) *BrowseStateKVRepository {
	return &BrowseStateKVRepository{kv: kv}
}

func (r *BrowseStateKVRepository) SetCurrentProductID(ctx context.Context, sessionID string, productID int64) error {
	return r.kv.Set(ctx, sessionID, currentProductIDKey, strconv.FormatInt(productID, 10))
}

// CurrentProductID は未設定・壊れた値なら ErrNotFound を返す（fail-open）。
func (r *BrowseStateKVRepository) CurrentProductID(ctx context.Context, sessionID string) (int64, error) {
	raw, ok, err := r.kv.Get(ctx, sessionID, currentProductIDKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, repo.ErrNotFound
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, repo.ErrNotFound
	}
	return id, nil
}
