package repository

import (
	"context"

	"ecokart/internal/domain/model"
)

// ウィッシュリストのコレクションを排他的に所有する。
type WishlistRepository interface {
	// Load は保存済みウィッシュリストを復元する。未保存・壊れた値は空扱い（fail-open）。
	Load(ctx context.Context, sessionID string) ([]model.WishlistEntry, error)
	Save(ctx context.Context, sessionID string, entries []model.WishlistEntry) error
	Clear(ctx context.Context, sessionID string) error
}
