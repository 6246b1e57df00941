package repository

import (
	"context"

	"ecokart/internal/domain/model"
)

// カートのコレクションを排他的に所有する。
type CartRepository interface {
	// Load は保存済みカートを復元する。未保存・壊れた値は空扱い（fail-open）。
	Load(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []model.CartLine) error
	Clear(ctx context.Context, sessionID string) error
}
