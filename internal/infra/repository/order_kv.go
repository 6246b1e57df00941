package repository

import (
	"context"
	"encoding/json"
	"time"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"
)

const currentOrderKey = "currentOrder"

// 確認画面が読むまでの保持期限。期限切れは読み取り時に遅延削除する。
const currentOrderTTL = 5 * time.Minute

// 確定済み注文をKVストアの "currentOrder" キーにJSONで永続化する。
// 注文番号の衝突は検出しない（後勝ちで上書き、許容済みの制限）。
type OrderKVRepository struct {
	kv repo.KVStore
}

// DI
func NewOrderKVRepository(kv repo.KVStore) *OrderKVRepository {
	return &OrderKVRepository{kv: kv}
}

func (r *OrderKVRepository) SaveCurrent(ctx context.Context, sessionID string, o model.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionID, currentOrderKey, string(raw))
}

// FindCurrent は未保存・壊れた値・期限切れなら ErrNotFound を返す。
func (r *OrderKVRepository) FindCurrent(ctx context.Context, sessionID string) (model.Order, error) {
	raw, ok, err := r.kv.Get(ctx, sessionID, currentOrderKey)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}

	var o model.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return model.Order{}, repo.ErrNotFound
	}

	if time.Since(o.OrderDate) > currentOrderTTL {
		_ = r.kv.Delete(ctx, sessionID, currentOrderKey)
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *OrderKVRepository) ClearCurrent(ctx context.Context, sessionID string) error {
	return r.kv.Delete(ctx, sessionID, currentOrderKey)
}
