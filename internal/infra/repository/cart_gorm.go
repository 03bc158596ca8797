package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 無条件upsert。同じIDがあればドキュメント全体を上書き。
func (r *CartGormRepository) Create(ctx context.Context, cart *model.Cart) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(cart).Error
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	return nil
}

// IDで1件取得
func (r *CartGormRepository) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return &cart, nil
}

// セッションキーで1件取得。複数ある場合は先頭の1件（順序は保証しない）。
func (r *CartGormRepository) FindByOwnerKey(ctx context.Context, ownerKey string) (*model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart by owner: %w", err)
	}
	return &cart, nil
}

// Createと同じ全体上書き。versionチェックは無し（後勝ち）。
func (r *CartGormRepository) Update(ctx context.Context, cart *model.Cart) error {
	if err := r.db.WithContext(ctx).Save(cart).Error; err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	return nil
}

// 無条件削除。対象が無くてもエラーにしない。
func (r *CartGormRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Cart{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
