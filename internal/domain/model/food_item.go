package model

import "encoding/json"

// メニューの商品。
// サーバーのレスポンス形は2系統ある（{_id,name,img} と {id,title,imageUrl}）ので
// UnmarshalJSONで片方に寄せる。
type FoodItem struct {
	ID          ItemID `json:"_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
	Img         string `json:"img"`
}

type foodItemWire struct {
	ID          ItemID `json:"_id"`
	AltID       ItemID `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
	Img         string `json:"img"`
	ImageURL    string `json:"imageUrl"`
}

func (f *FoodItem) UnmarshalJSON(data []byte) error {
	var w foodItemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	// _id優先、無ければid
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	name := w.Name
	if name == "" {
		name = w.Title
	}
	img := w.Img
	if img == "" {
		img = w.ImageURL
	}

	*f = FoodItem{
		ID:          id,
		Name:        name,
		Price:       w.Price,
		Category:    w.Category,
		Rating:      w.Rating,
		Description: w.Description,
		Img:         img,
	}
	return nil
}
