package repository

import (
	"context"
	"encoding/json"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"

	"github.com/labstack/gommon/log"
)

const cartKey = "cart"

// カートをKVストアの "cart" キーにJSON配列で永続化する。
type CartKVRepository struct {
	kv repo.KVStore
}

// DI
func NewCartKVRepository(kv repo.KVStore) *CartKVRepository {
	return &CartKVRepository{kv: kv}
}

// Load は保存済みカートを復元する。未保存・壊れたJSONは空扱い（fail-open）。
func (r *CartKVRepository) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	raw, ok, err := r.kv.Get(ctx, sessionID, cartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.CartLine{}, nil
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Warnf("cart: broken payload, treating as empty: %v", err)
		return []model.CartLine{}, nil
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return lines, nil
}

func (r *CartKVRepository) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionID, cartKey, string(raw))
}

func (r *CartKVRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Delete(ctx, sessionID, cartKey)
}
