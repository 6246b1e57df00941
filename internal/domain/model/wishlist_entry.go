package model

// ウィッシュリストの1件。商品IDをキーにした集合（数量なし）。
type WishlistEntry struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

// NewWishlistEntry は商品スナップショットからエントリを作る。
func NewWishlistEntry(p Product) WishlistEntry {
	return WishlistEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
	}
}

// CartLine はエントリをカート明細（数量1）に変換する。
func (e WishlistEntry) CartLine() CartLine {
	return CartLine{
		ProductID: e.ProductID,
		Name:      e.Name,
		Price:     e.Price,
		Image:     e.Image,
		Category:  e.Category,
		Quantity:  1,
	}
}
