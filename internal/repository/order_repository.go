package repository

import (
	"context"

	"ecokart/internal/domain/model"
)

// 確定済み注文（currentOrder）。確認画面が読むまでの一時保存で、
// 保持期限を過ぎたものは存在しない扱いになる。
type OrderRepository interface {
	SaveCurrent(ctx context.Context, sessionID string, o model.Order) error
	// FindCurrent は未保存・期限切れなら ErrNotFound を返す。
	FindCurrent(ctx context.Context, sessionID string) (model.Order, error)
	ClearCurrent(ctx context.Context, sessionID string) error
}
