package model

// 注文作成（決済インテント）のレスポンス
type PaymentIntent struct {
	ID string `json:"id"`
}

// 決済画面に渡すプリフィル
type CheckoutPrefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"contact"`
}

// 決済ゲートウェイへ渡すオプション。
// Amountは最小通貨単位（paise）。
type CheckoutOptions struct {
	Description string          `json:"description"`
	IntentID    string          `json:"order_id"`
	Amount      int64           `json:"amount"`
	Prefill     CheckoutPrefill `json:"prefill"`
}

// 決済結果
type PaymentResult struct {
	PaymentID string `json:"payment_id"`
}
