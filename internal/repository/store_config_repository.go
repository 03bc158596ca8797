package repository

import (
	"app/internal/domain/model"
	"context"
)

// 店舗設定の永続化を約束。
type StoreConfigRepository interface {
	Create(ctx context.Context, cfg *model.StoreConfig) error
	FindByID(ctx context.Context, id string) (*model.StoreConfig, error)
	// activeな設定を1件取得。無ければErrNotFound。
	FindActive(ctx context.Context) (*model.StoreConfig, error)
	Update(ctx context.Context, cfg *model.StoreConfig) error
	Delete(ctx context.Context, id string) error
}
