package repository

import "context"

// セッション単位の文字列キーKVストア。
// ブラウザ版のlocalStorageに相当し、値はJSONテキストで保存する。
// トランザクション分離は無く、同一キーへの競合は後勝ち。
type KVStore interface {
	// Get は値と存在フラグを返す。
	Get(ctx context.Context, sessionID string, key string) (string, bool, error)
	Set(ctx context.Context, sessionID string, key string, value string) error
	// Delete は存在しないキーでもエラーにしない。
	Delete(ctx context.Context, sessionID string, key string) error
}
