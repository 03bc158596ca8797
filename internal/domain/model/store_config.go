package model

import "time"

// 店舗設定。activeな1件をフロントが参照する。
type StoreConfig struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string `gorm:"type:varchar(255);not null" json:"company_name"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `json:"logo_url,omitempty"`
	FaviconURL  string `json:"favicon_url,omitempty"`

	// 連絡先
	WhatsAppNumber string `gorm:"not null" json:"whatsapp_number"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`

	// SNS
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`

	// 通貨・地域
	Currency string `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	Country  string `gorm:"type:varchar(10);not null" json:"country"`
	Timezone string `gorm:"not null" json:"timezone"`
	Language string `gorm:"type:varchar(10);not null;default:'es'" json:"language"`

	// 配送（セント単位）
	FreeShippingThreshold *int64 `json:"free_shipping_threshold,omitempty"`
	StandardShippingCost  *int64 `json:"standard_shipping_cost,omitempty"`
	DeliveryTime          string `json:"delivery_time,omitempty"`

	// WhatsApp用の定型文
	WelcomeMessage  string `json:"welcome_message,omitempty"`
	FarewellMessage string `json:"farewell_message,omitempty"`

	Active    bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
