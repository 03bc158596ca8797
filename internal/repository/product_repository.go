package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, includeInactive bool) ([]model.Product, error)
	ListByCategory(ctx context.Context, category model.ProductCategory, includeInactive bool) ([]model.Product, error)
	ListFeatured(ctx context.Context, includeInactive bool) ([]model.Product, error)
	// name/descriptionの部分一致
	Search(ctx context.Context, term string, includeInactive bool) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
