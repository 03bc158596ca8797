package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type StoreConfigGormRepository struct {
	db *gorm.DB
}

// DI
func NewStoreConfigGormRepository(db *gorm.DB) *StoreConfigGormRepository {
	return &StoreConfigGormRepository{db: db}
}

func (r *StoreConfigGormRepository) Create(ctx context.Context, cfg *model.StoreConfig) error {
	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("create store config: %w", err)
	}
	return nil
}

func (r *StoreConfigGormRepository) FindByID(ctx context.Context, id string) (*model.StoreConfig, error) {
	var cfg model.StoreConfig

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cfg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find store config: %w", err)
	}
	return &cfg, nil
}

// activeな設定を1件取得。複数あれば新しいもの。
func (r *StoreConfigGormRepository) FindActive(ctx context.Context) (*model.StoreConfig, error) {
	var cfg model.StoreConfig

	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("updated_at desc").
		First(&cfg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find active store config: %w", err)
	}
	return &cfg, nil
}

func (r *StoreConfigGormRepository) Update(ctx context.Context, cfg *model.StoreConfig) error {
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return fmt.Errorf("update store config: %w", err)
	}
	return nil
}

func (r *StoreConfigGormRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.StoreConfig{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete store config: %w", err)
	}
	return nil
}
