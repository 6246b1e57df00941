package model

// カートの明細。
// 追加時点の商品情報（名前・価格など）をスナップショットで必ず保存。
// JSONキーは保存済みデータ（ブラウザ版のlocalStorage形式）と互換。
type CartLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int64   `json:"quantity"`
}

// NewCartLine は商品スナップショットから明細を作る。
func NewCartLine(p Product, qty int64) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Quantity:  qty,
	}
}
