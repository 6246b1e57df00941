package kv

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_entries テーブルの1行。セッション×キーで一意。
type Entry struct {
	SessionID string    `gorm:"primaryKey;type:varchar(64)" json:"session_id"`
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "kv_entries" }

type GormStore struct {
	db *gorm.DB
}

// DI
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, sessionID string, key string) (string, bool, error) {
	var e Entry

	err := s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&e).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

// Set は後勝ちの上書き保存。
func (s *GormStore) Set(ctx context.Context, sessionID string, key string, value string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Entry

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ? AND key = ?", sessionID, key).
			First(&e).Error

		if err == nil {
			return tx.Model(&Entry{}).
				Where("session_id = ? AND key = ?", sessionID, key).
				Update("value", value).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 無ければ新規作成
		return tx.Create(&Entry{
			SessionID: sessionID,
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now(),
		}).Error
	})
}

// Delete は存在しないキーでも成功扱い。
func (s *GormStore) Delete(ctx context.Context, sessionID string, key string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&Entry{}).Error
}
