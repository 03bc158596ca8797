package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductGormRepository) List(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	var items []model.Product

	q := r.db.WithContext(ctx).Order("created_at desc")
	q = filterInactive(q, includeInactive)

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (r *ProductGormRepository) ListByCategory(ctx context.Context, category model.ProductCategory, includeInactive bool) ([]model.Product, error) {
	var items []model.Product

	q := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at desc")
	q = filterInactive(q, includeInactive)

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return items, nil
}

func (r *ProductGormRepository) ListFeatured(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	var items []model.Product

	q := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at desc")
	q = filterInactive(q, includeInactive)

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return items, nil
}

// name/descriptionの部分一致（大文字小文字を無視）
func (r *ProductGormRepository) Search(ctx context.Context, term string, includeInactive bool) ([]model.Product, error) {
	var items []model.Product

	like := "%" + term + "%"
	q := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", like, like).
		Order("created_at desc")
	q = filterInactive(q, includeInactive)

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return items, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("soft delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) HardDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Unscoped().Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("hard delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func filterInactive(q *gorm.DB, includeInactive bool) *gorm.DB {
	if includeInactive {
		return q
	}
	return q.Where("status = ?", model.ProductStatusActive)
}
