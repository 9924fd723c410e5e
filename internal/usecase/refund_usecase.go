package usecase

import (
	"sync"

	"app/internal/domain/model"
)

// RefundUsecase は却下された明細の返金フラグ。
// サーバー側のAPI契約が無いのでローカル保持のみ（セッション内）。
type RefundUsecase struct {
	mu      sync.Mutex
	granted map[string]bool // orderID → granted
}

func NewRefundUsecase() *RefundUsecase {
	return &RefundUsecase{granted: map[string]bool{}}
}

type RefundOutput struct {
	OrderID string `json:"order_id"`
	Total   int64  `json:"total"`
	Granted bool   `json:"granted"`
}

// 返金申請済みか
func (u *RefundUsecase) Status(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.granted[orderID]
}

// 返金を申請する。二重申請しても結果は同じ。
// 返金額は却下明細の Σ(price × quantity)。
func (u *RefundUsecase) Request(orderID string, rejected []model.OrderItem) RefundOutput {
	var total int64 = 0
	for _, it := range rejected {
		total += it.Price * it.Quantity
	}

	u.mu.Lock()
	u.granted[orderID] = true
	u.mu.Unlock()

	return RefundOutput{
		OrderID: orderID,
		Total:   total,
		Granted: true,
	}
}
