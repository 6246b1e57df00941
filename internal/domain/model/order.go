package model

import "time"

// 注文確定時のスナップショット。
// カートの明細を値コピーで持ち、以後カートと構造を共有しない。
// 金額は生の値で保存し、丸めは表示時のみ。
type Order struct {
	OrderNumber string     `json:"orderNumber"`
	OrderDate   time.Time  `json:"orderDate"`
	Items       []CartLine `json:"items"`

	// フォームの連絡先・配送先
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
