package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "ACTIVE"
	ProductStatusInactive   ProductStatus = "INACTIVE"
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

type ProductCategory string

const (
	CategoryMachinery ProductCategory = "MACHINERY"
	CategoryTools     ProductCategory = "TOOLS"
	CategoryStorage   ProductCategory = "STORAGE"
	CategorySafety    ProductCategory = "SAFETY"
	CategoryOther     ProductCategory = "OTHER"
)

// 配送情報（重さkg・寸法cm）
type ShippingInfo struct {
	WeightKg          float64 `json:"weight_kg"`
	LengthCm          float64 `json:"length_cm"`
	WidthCm           float64 `json:"width_cm"`
	HeightCm          float64 `json:"height_cm"`
	Fragile           bool    `json:"fragile"`
	SignatureRequired bool    `json:"signature_required"`
}

type Product struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         int64           `gorm:"not null" json:"price"` // セント単位
	OriginalPrice *int64          `json:"original_price,omitempty"`
	Status        ProductStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Category      ProductCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Featured      bool            `gorm:"not null;default:false" json:"featured"`
	Stock         int64           `gorm:"not null" json:"stock"`
	MinStock      int64           `gorm:"not null;default:0" json:"min_stock"`
	Specs         map[string]any  `gorm:"type:jsonb;serializer:json" json:"specs,omitempty"`
	Features      []string        `gorm:"type:jsonb;serializer:json" json:"features,omitempty"`
	Images        []string        `gorm:"type:jsonb;serializer:json" json:"images,omitempty"`
	Shipping      ShippingInfo    `gorm:"type:jsonb;serializer:json" json:"shipping"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// カートに追加できる状態か
func (p *Product) IsAvailable() bool {
	return p.Status == ProductStatusActive && p.Stock > 0
}

// 先頭画像（無ければ空文字）
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// 割引率（%）。元値が無い・安い場合は0。
func (p *Product) DiscountPercent() int64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return (*p.OriginalPrice - p.Price) * 100 / *p.OriginalPrice
}
