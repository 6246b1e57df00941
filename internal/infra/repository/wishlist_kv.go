package repository

import (
	"context"
	"encoding/json"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"

	"github.com/labstack/gommon/log"
)

const wishlistKey = "wishlist"

// ウィッシュリストをKVストアの "wishlist" キーにJSON配列で永続化する。
type WishlistKVRepository struct {
	kv repo.KVStore
}

// DI
func NewWishlistKVRepository(kv repo.KVStore) *WishlistKVRepository {
	return &WishlistKVRepository{kv: kv}
}

// Load は保存済みウィッシュリストを復元する。未保存・壊れたJSONは空扱い（fail-open）。
func (r *WishlistKVRepository) Load(ctx context.Context, sessionID string) ([]model.WishlistEntry, error) {
	raw, ok, err := r.kv.Get(ctx, sessionID, wishlistKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.WishlistEntry{}, nil
	}

	var entries []model.WishlistEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Warnf("wishlist: broken payload, treating as empty: %v", err)
		return []model.WishlistEntry{}, nil
	}
	if entries == nil {
		entries = []model.WishlistEntry{}
	}
	return entries, nil
}

func (r *WishlistKVRepository) Save(ctx context.Context, sessionID string, entries []model.WishlistEntry) error {
	if entries == nil {
		entries = []model.WishlistEntry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionID, wishlistKey, string(raw))
}

func (r *WishlistKVRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Delete(ctx, sessionID, wishlistKey)
}
