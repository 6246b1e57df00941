package repository

import "context"

// 画面遷移ヒント（currentProductId）。商品選択→詳細表示の間だけ使う一時値。
type BrowseStateRepository interface {
	SetCurrentProductID(ctx context.Context, sessionID string, productID int64) error
	// CurrentProductID は未設定なら ErrNotFound を返す。
	CurrentProductID(ctx context.Context, sessionID string) (int64, error)
}
