package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// StoreConfigUsecase は店舗設定の業務ロジックです。
type StoreConfigUsecase struct {
	configRepo repo.StoreConfigRepository
	idGen      IDGenerator
	clock      Clock
}

// DI
func NewStoreConfigUsecase(configRepo repo.StoreConfigRepository, idGen IDGenerator, clock Clock) *StoreConfigUsecase {
	return &StoreConfigUsecase{
		configRepo: configRepo,
		idGen:      idGen,
		clock:      clock,
	}
}

type StoreConfigInput struct {
	CompanyName    string `json:"company_name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logo_url,omitempty"`
	FaviconURL     string `json:"favicon_url,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	YouTube        string `json:"youtube,omitempty"`
	Currency       string `json:"currency"`
	Country        string `json:"country"`
	Timezone       string `json:"timezone"`
	Language       string `json:"language"`

	FreeShippingThreshold *int64 `json:"free_shipping_threshold,omitempty"`
	StandardShippingCost  *int64 `json:"standard_shipping_cost,omitempty"`
	DeliveryTime          string `json:"delivery_time,omitempty"`

	WelcomeMessage  string `json:"welcome_message,omitempty"`
	FarewellMessage string `json:"farewell_message,omitempty"`

	Active bool `json:"active"`
}

func (u *StoreConfigUsecase) CreateConfig(ctx context.Context, in StoreConfigInput) (*model.StoreConfig, error) {
	if err := validateConfigInput(in); err != nil {
		return nil, err
	}

	now := u.clock.Now()
	cfg := &model.StoreConfig{
		ID:                    u.idGen.NewID(),
		CompanyName:           in.CompanyName,
		Description:           in.Description,
		LogoURL:               in.LogoURL,
		FaviconURL:            in.FaviconURL,
		WhatsAppNumber:        in.WhatsAppNumber,
		Phone:                 in.Phone,
		Email:                 in.Email,
		Address:               in.Address,
		Instagram:             in.Instagram,
		Facebook:              in.Facebook,
		LinkedIn:              in.LinkedIn,
		YouTube:               in.YouTube,
		Currency:              in.Currency,
		Country:               in.Country,
		Timezone:              in.Timezone,
		Language:              in.Language,
		FreeShippingThreshold: in.FreeShippingThreshold,
		StandardShippingCost:  in.StandardShippingCost,
		DeliveryTime:          in.DeliveryTime,
		WelcomeMessage:        in.WelcomeMessage,
		FarewellMessage:       in.FarewellMessage,
		Active:                in.Active,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := u.configRepo.Create(ctx, cfg); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return cfg, nil
}

// IDで取得。見つからない場合は(nil, nil)。
func (u *StoreConfigUsecase) GetConfigByID(ctx context.Context, id string) (*model.StoreConfig, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	cfg, err := u.configRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return cfg, nil
}

// activeな設定を取得。無ければ(nil, nil)。
func (u *StoreConfigUsecase) GetActiveConfig(ctx context.Context) (*model.StoreConfig, error) {
	cfg, err := u.configRepo.FindActive(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return cfg, nil
}

func (u *StoreConfigUsecase) UpdateConfig(ctx context.Context, id string, in StoreConfigInput) (*model.StoreConfig, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}
	if err := validateConfigInput(in); err != nil {
		return nil, err
	}

	cfg, err := u.configRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeConfigNotFound, "config not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	cfg.CompanyName = in.CompanyName
	cfg.Description = in.Description
	cfg.LogoURL = in.LogoURL
	cfg.FaviconURL = in.FaviconURL
	cfg.WhatsAppNumber = in.WhatsAppNumber
	cfg.Phone = in.Phone
	cfg.Email = in.Email
	cfg.Address = in.Address
	cfg.Instagram = in.Instagram
	cfg.Facebook = in.Facebook
	cfg.LinkedIn = in.LinkedIn
	cfg.YouTube = in.YouTube
	cfg.Currency = in.Currency
	cfg.Country = in.Country
	cfg.Timezone = in.Timezone
	cfg.Language = in.Language
	cfg.FreeShippingThreshold = in.FreeShippingThreshold
	cfg.StandardShippingCost = in.StandardShippingCost
	cfg.DeliveryTime = in.DeliveryTime
	cfg.WelcomeMessage = in.WelcomeMessage
	cfg.FarewellMessage = in.FarewellMessage
	cfg.Active = in.Active
	cfg.UpdatedAt = u.clock.Now()

	if err := u.configRepo.Update(ctx, cfg); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return cfg, nil
}

func (u *StoreConfigUsecase) DeleteConfig(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	if err := u.configRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	return nil
}

func validateConfigInput(in StoreConfigInput) error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "company_name is required")
	}
	if strings.TrimSpace(in.WhatsAppNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "whatsapp_number is required")
	}
	if strings.TrimSpace(in.Currency) == "" || strings.TrimSpace(in.Country) == "" {
		return NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "currency and country are required")
	}
	return nil
}
