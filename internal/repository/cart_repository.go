package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カートの永続化を約束。
// ドキュメント全体を保存・取得する。部分更新や楽観ロックは提供しない。
type CartRepository interface {
	// 無条件upsert。同じIDがあれば上書き。
	Create(ctx context.Context, cart *model.Cart) error
	// IDで1件取得。無ければErrNotFound。
	FindByID(ctx context.Context, id string) (*model.Cart, error)
	// セッションキーで1件取得。複数あれば先頭の1件（順序は保証しない）。
	FindByOwnerKey(ctx context.Context, ownerKey string) (*model.Cart, error)
	// Createと同じ全体上書き。後勝ち。
	Update(ctx context.Context, cart *model.Cart) error
	// 無条件削除。無くてもエラーにしない。
	Delete(ctx context.Context, id string) error
}
