package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductUsecase は商品カタログの業務ロジックです。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

type CreateProductInput struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         int64              `json:"price"`
	OriginalPrice *int64             `json:"original_price,omitempty"`
	Status        string             `json:"status"`
	Category      string             `json:"category"`
	Featured      bool               `json:"featured"`
	Stock         int64              `json:"stock"`
	MinStock      int64              `json:"min_stock"`
	Specs         map[string]any     `json:"specs,omitempty"`
	Features      []string           `json:"features,omitempty"`
	Images        []string           `json:"images,omitempty"`
	Shipping      model.ShippingInfo `json:"shipping"`
}

// 商品登録。IDと日時はここで採番する。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "name is required")
	}
	if in.Price < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "price must be >= 0")
	}
	if in.Stock < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "stock must be >= 0")
	}

	status, err := parseProductStatus(in.Status)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid status")
	}
	category, err := parseProductCategory(in.Category)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid category")
	}

	now := u.clock.Now()
	p := &model.Product{
		ID:            u.idGen.NewID(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Status:        status,
		Category:      category,
		Featured:      in.Featured,
		Stock:         in.Stock,
		MinStock:      in.MinStock,
		Specs:         in.Specs,
		Features:      in.Features,
		Images:        in.Images,
		Shipping:      in.Shipping,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.productRepo.Create(ctx, p); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return p, nil
}

// IDで取得。見つからない場合は(nil, nil)。
func (u *ProductUsecase) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) ListByCategory(ctx context.Context, category string, includeInactive bool) ([]model.Product, error) {
	cat, err := parseProductCategory(category)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid category")
	}

	items, err := u.productRepo.ListByCategory(ctx, cat, includeInactive)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) ListFeatured(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	items, err := u.productRepo.ListFeatured(ctx, includeInactive)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) SearchProducts(ctx context.Context, term string, includeInactive bool) ([]model.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "search term is required")
	}
	if len(term) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "search term too long")
	}

	items, err := u.productRepo.Search(ctx, term, includeInactive)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return items, nil
}

type UpdateProductInput struct {
	ID            string
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         int64              `json:"price"`
	OriginalPrice *int64             `json:"original_price,omitempty"`
	Status        string             `json:"status"`
	Category      string             `json:"category"`
	Featured      bool               `json:"featured"`
	Stock         int64              `json:"stock"`
	MinStock      int64              `json:"min_stock"`
	Specs         map[string]any     `json:"specs,omitempty"`
	Features      []string           `json:"features,omitempty"`
	Images        []string           `json:"images,omitempty"`
	Shipping      model.ShippingInfo `json:"shipping"`
}

// 全項目置き換えの更新。作成日時は保持する。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, in UpdateProductInput) (*model.Product, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "name is required")
	}
	if in.Price < 0 || in.Stock < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "price and stock must be >= 0")
	}

	status, err := parseProductStatus(in.Status)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid status")
	}
	category, err := parseProductCategory(in.Category)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid category")
	}

	p, err := u.productRepo.FindByID(ctx, in.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeProductNotFound, "product not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.Status = status
	p.Category = category
	p.Featured = in.Featured
	p.Stock = in.Stock
	p.MinStock = in.MinStock
	p.Specs = in.Specs
	p.Features = in.Features
	p.Images = in.Images
	p.Shipping = in.Shipping
	p.UpdatedAt = u.clock.Now()

	if err := u.productRepo.Update(ctx, p); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return p, nil
}

// 論理削除
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	err := u.productRepo.SoftDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, CodeProductNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return nil
}

// 物理削除（管理用）
func (u *ProductUsecase) HardDeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	err := u.productRepo.HardDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, CodeProductNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return nil
}

func parseProductStatus(s string) (model.ProductStatus, error) {
	switch model.ProductStatus(s) {
	case model.ProductStatusActive, model.ProductStatusInactive, model.ProductStatusOutOfStock:
		return model.ProductStatus(s), nil
	default:
		return "", errors.New("invalid status")
	}
}

func parseProductCategory(s string) (model.ProductCategory, error) {
	switch model.ProductCategory(s) {
	case model.CategoryMachinery, model.CategoryTools, model.CategoryStorage, model.CategorySafety, model.CategoryOther:
		return model.ProductCategory(s), nil
	default:
		return "", errors.New("invalid category")
	}
}
