package model

// カタログの商品1件。カタログは外部提供のproducts.jsonで読み取り専用。
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
}
