package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 国番号つきの数字のみ（例: 5491122334455）
var waNumberPattern = regexp.MustCompile(`^[1-9][0-9]{7,14}$`)

// WhatsAppUsecase はカートから注文メッセージを組み立てる。
// 実際の送信はしない。wa.meのURLを返すだけ。
type WhatsAppUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository

	number      string
	companyName string
}

// DI
func NewWhatsAppUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository, number string, companyName string) *WhatsAppUsecase {
	return &WhatsAppUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		number:      number,
		companyName: companyName,
	}
}

type OrderMessageOutput struct {
	Message        string `json:"message"`
	WhatsAppURL    string `json:"whatsapp_url"`
	FormattedTotal string `json:"formatted_total"`
}

// カートの内容から注文メッセージとURLを作る。
func (u *WhatsAppUsecase) GenerateOrderMessage(ctx context.Context, cartID string) (*OrderMessageOutput, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "cart_id is required")
	}
	if !ValidateWhatsAppNumber(u.number) {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeInvalidInput, "whatsapp number not configured")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeCartNotFound, "cart not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	message := u.buildOrderMessage(cart)

	return &OrderMessageOutput{
		Message:        message,
		WhatsAppURL:    u.buildURL(message),
		FormattedTotal: cart.FormattedSubtotal(),
	}, nil
}

type InquiryMessageOutput struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// 商品1件の問い合わせメッセージを作る。
func (u *WhatsAppUsecase) GenerateInquiryMessage(ctx context.Context, productID string) (*InquiryMessageOutput, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "product_id is required")
	}
	if !ValidateWhatsAppNumber(u.number) {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeInvalidInput, "whatsapp number not configured")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeProductNotFound, "product not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I would like to ask about a product from %s:\n\n", u.companyName)
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "Price: $%.2f\n", float64(p.Price)/100)
	if specs := formatSpecs(p.Specs); specs != "" {
		fmt.Fprintf(&b, "Specs: %s\n", specs)
	}
	b.WriteString("\nIs it currently in stock?\n\nThanks!")

	message := b.String()
	return &InquiryMessageOutput{
		Message:     message,
		WhatsAppURL: u.buildURL(message),
	}, nil
}

func (u *WhatsAppUsecase) buildOrderMessage(cart *model.Cart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I would like to place an order with %s:\n\n", u.companyName)

	if cart.IsEmpty() {
		b.WriteString("The cart is empty.")
		return b.String()
	}

	for i, item := range cart.Items {
		unitWord := "unit"
		if item.Quantity > 1 {
			unitWord = "units"
		}
		fmt.Fprintf(&b, "%d. %s x %d %s", i+1, item.Name, item.Quantity, unitWord)

		if specs := formatSpecs(item.Specs); specs != "" {
			fmt.Fprintf(&b, "\n   Specs: %s", specs)
		}

		fmt.Fprintf(&b, "\n   Unit price: $%.2f", float64(item.UnitPrice)/100)
		fmt.Fprintf(&b, "\n   Subtotal: $%.2f\n\n", float64(item.UnitPrice*item.Quantity)/100)
	}

	fmt.Fprintf(&b, "💰 Estimated total: %s\n\n", cart.FormattedSubtotal())

	fmt.Fprintf(&b, "📋 Order details:\n")
	fmt.Fprintf(&b, "• Products: %d\n", len(cart.Items))
	fmt.Fprintf(&b, "• Total units: %d\n\n", cart.TotalItemCount())

	b.WriteString("Please confirm:\n")
	b.WriteString("• Product availability\n")
	b.WriteString("• Estimated delivery time\n")
	b.WriteString("• Payment and shipping options\n\n")
	b.WriteString("Thank you! 🙏")

	return b.String()
}

func (u *WhatsAppUsecase) buildURL(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", u.number, url.QueryEscape(message))
}

// 電話番号の形式チェック（数字のみ、国番号つき）
func ValidateWhatsAppNumber(number string) bool {
	return waNumberPattern.MatchString(number)
}

// specsを"key: value, key: value"に整形。空値は落とす。キー順は安定させる。
func formatSpecs(specs map[string]any) string {
	if len(specs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := specs[k]
		if v == nil || v == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, v))
	}
	return strings.Join(parts, ", ")
}
