package model

// カートの明細。
// 同じItemIDの明細は常に1件（数量で表す）。
type CartLine struct {
	ItemID    ItemID `json:"item_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Img       string `json:"img"`
}

// 明細の小計
func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * l.Quantity
}

// 商品からカート明細を作る
func NewCartLine(f FoodItem, quantity int64) CartLine {
	return CartLine{
		ItemID:    f.ID,
		Title:     f.Name,
		UnitPrice: f.Price,
		Quantity:  quantity,
		Img:       f.Img,
	}
}
