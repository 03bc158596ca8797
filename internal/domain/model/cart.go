package model

import (
	"fmt"
	"time"
)

// カートの明細
// 商品名・価格・画像・仕様は追加時点のスナップショット（後から同期しない）。
type CartItem struct {
	ProductID string         `json:"product_id"`
	Name      string         `json:"name"`
	UnitPrice int64          `json:"unit_price"` // セント単位
	Quantity  int64          `json:"quantity"`
	ImageURL  string         `json:"image_url,omitempty"`
	Specs     map[string]any `json:"specs,omitempty"`
}

// 明細はドキュメントとして1カラムにまとめて保存する
type CartItems []CartItem

// 1セッションにつきカートは1つを想定（DBでは強制しない）
type Cart struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerKey  string    `gorm:"not null;index" json:"owner_key"`
	Items     CartItems `gorm:"type:jsonb;serializer:json" json:"items"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// 同一商品は数量加算。スナップショット項目は最初の追加が勝つ。
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = time.Now()
			return
		}
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// 数量を置き換える。0以下は削除と同じ。明細が無ければ何もしない。
func (c *Cart) SetItemQuantity(productID string, quantity int64) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			c.RemoveItem(productID)
			return
		}

		c.Items[i].Quantity = quantity
		c.UpdatedAt = time.Now()
		return
	}
}

// 明細を削除。無くても冪等。
func (c *Cart) RemoveItem(productID string) {
	kept := make(CartItems, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	c.Items = kept
	c.UpdatedAt = time.Now()
}

// 明細を全削除（カート自体は残す）
func (c *Cart) Clear() {
	c.Items = CartItems{}
	c.UpdatedAt = time.Now()
}

// 明細を1件取得。無ければnil。
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// 数量の合計
func (c *Cart) TotalItemCount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// 小計（セント）
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}

// 表示用の小計（"$12.34"）
func (c *Cart) FormattedSubtotal() string {
	return fmt.Sprintf("$%.2f", float64(c.Subtotal())/100)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
