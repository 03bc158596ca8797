package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /carts の業務ロジックです。
// 読み込み→検証→集約の変更→ドキュメント全体の保存、の順で進める。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock

	// trueなら存在しない明細の数量変更を404にする（既定は黙って無視）
	strictItemUpdate bool
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
	strictItemUpdate bool,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:         cartRepo,
		productRepo:      productRepo,
		idGen:            idGen,
		clock:            clock,
		strictItemUpdate: strictItemUpdate,
	}
}

// レスポンスの明細
type CartItemOutput struct {
	ProductID string         `json:"product_id"`
	Name      string         `json:"name"`
	UnitPrice int64          `json:"unit_price"`
	Quantity  int64          `json:"quantity"`
	ImageURL  string         `json:"image_url,omitempty"`
	Specs     map[string]any `json:"specs,omitempty"`
}

// レスポンス本体。subtotal/total_itemsは保存せず毎回計算する。
type CartOutput struct {
	ID         string           `json:"id"`
	OwnerKey   string           `json:"owner_key"`
	Items      []CartItemOutput `json:"items"`
	Subtotal   int64            `json:"subtotal"`
	TotalItems int64            `json:"total_items"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// カート作成の入力。itemsは省略可能。
type CreateCartInput struct {
	OwnerKey string
	Items    []CartItemInput
}

type CartItemInput struct {
	ProductID string         `json:"product_id"`
	Name      string         `json:"name"`
	UnitPrice int64          `json:"unit_price"`
	Quantity  int64          `json:"quantity"`
	ImageURL  string         `json:"image_url,omitempty"`
	Specs     map[string]any `json:"specs,omitempty"`
}

// カート作成。ownerKeyの重複チェックはしない（同一セッションで複数作れる）。
func (u *CartUsecase) CreateCart(ctx context.Context, in CreateCartInput) (*CartOutput, error) {
	if strings.TrimSpace(in.OwnerKey) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "owner_key is required")
	}

	now := u.clock.Now()
	items := make(model.CartItems, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid item")
		}
		items = append(items, model.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
			Specs:     it.Specs,
		})
	}

	cart := &model.Cart{
		ID:        u.idGen.NewID(),
		OwnerKey:  in.OwnerKey,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.cartRepo.Create(ctx, cart); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

// IDで取得。見つからない場合は(nil, nil)を返し、handler側で404にする。
func (u *CartUsecase) GetCartByID(ctx context.Context, id string) (*CartOutput, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "id is required")
	}

	cart, err := u.cartRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

// セッションキーで取得。見つからない場合は(nil, nil)。
func (u *CartUsecase) GetCartByOwner(ctx context.Context, ownerKey string) (*CartOutput, error) {
	if strings.TrimSpace(ownerKey) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "owner_key is required")
	}

	cart, err := u.cartRepo.FindByOwnerKey(ctx, ownerKey)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

type AddItemInput struct {
	CartID    string
	ProductID string
	Quantity  int64
}

// 商品を追加（同一商品は数量加算）。
// 商品の存在・公開状態・在庫を確認してからスナップショットを作る。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (*CartOutput, error) {
	if in.CartID == "" || in.ProductID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "cart_id and product_id are required")
	}
	if in.Quantity < 1 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid quantity")
	}

	// 商品チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeProductNotFound, "product not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}
	if !p.IsAvailable() {
		return nil, NewHTTPError(http.StatusBadRequest, CodeProductUnavailable, "product not available")
	}
	if p.Stock < in.Quantity {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "insufficient stock")
	}

	// カート取得
	cart, err := u.cartRepo.FindByID(ctx, in.CartID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeCartNotFound, "cart not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	// 追加時点のスナップショットを作って加える
	cart.AddItem(model.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  in.Quantity,
		ImageURL:  p.PrimaryImage(),
		Specs:     p.Specs,
	})

	// ドキュメント全体を上書き保存
	if err := u.cartRepo.Update(ctx, cart); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

type UpdateQuantityInput struct {
	CartID    string
	ProductID string
	Quantity  int64
}

// 数量変更。0は削除。
// 在庫チェックはベストエフォート：商品が引けなければスキップする。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, in UpdateQuantityInput) (*CartOutput, error) {
	if in.CartID == "" || in.ProductID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "cart_id and product_id are required")
	}
	if in.Quantity < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "invalid quantity")
	}

	cart, err := u.cartRepo.FindByID(ctx, in.CartID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeCartNotFound, "cart not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	if in.Quantity == 0 {
		cart.RemoveItem(in.ProductID)
	} else {
		if u.strictItemUpdate && cart.Item(in.ProductID) == nil {
			return nil, NewHTTPError(http.StatusNotFound, CodeItemNotFound, "item not in cart")
		}

		p, err := u.productRepo.FindByID(ctx, in.ProductID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
		}
		if p != nil && p.Stock < in.Quantity {
			return nil, NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "insufficient stock")
		}

		cart.SetItemQuantity(in.ProductID, in.Quantity)
	}

	if err := u.cartRepo.Update(ctx, cart); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

// 明細削除。明細が無くてもカートがあれば成功。
func (u *CartUsecase) RemoveItem(ctx context.Context, cartID string, productID string) (*CartOutput, error) {
	if cartID == "" || productID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "cart_id and product_id are required")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeCartNotFound, "cart not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	cart.RemoveItem(productID)

	if err := u.cartRepo.Update(ctx, cart); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

// 全明細を削除（カートのレコードは残る）
func (u *CartUsecase) ClearCart(ctx context.Context, cartID string) (*CartOutput, error) {
	if cartID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, CodeInvalidInput, "cart_id is required")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, CodeCartNotFound, "cart not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	cart.Clear()

	if err := u.cartRepo.Update(ctx, cart); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, CodeStorageError, "db error")
	}

	return buildCartOutput(cart), nil
}

// 集約からレスポンスを作る
func buildCartOutput(cart *model.Cart) *CartOutput {
	items := make([]CartItemOutput, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartItemOutput{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
			Specs:     it.Specs,
		})
	}

	return &CartOutput{
		ID:         cart.ID,
		OwnerKey:   cart.OwnerKey,
		Items:      items,
		Subtotal:   cart.Subtotal(),
		TotalItems: cart.TotalItemCount(),
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
}
