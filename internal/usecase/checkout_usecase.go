package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

// uuidの供給（main側で実装）
type IDGenerator interface {
	NewID() string
}

// CheckoutUsecase は支払いフロー。
// プロフィール取得→決済インテント作成→決済→成功時のみカートを空にする。
// 失敗したらカートはそのまま（操作前の状態に戻るだけ）。
type CheckoutUsecase struct {
	cart    *CartUsecase
	profile gateway.ProfileGateway
	orders  gateway.OrderGateway
	payment gateway.PaymentGateway
	idGen   IDGenerator
}

// DI
func NewCheckoutUsecase(
	cart *CartUsecase,
	profile gateway.ProfileGateway,
	orders gateway.OrderGateway,
	payment gateway.PaymentGateway,
	idGen IDGenerator,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:    cart,
		profile: profile,
		orders:  orders,
		payment: payment,
		idGen:   idGen,
	}
}

type CheckoutOutput struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context) (CheckoutOutput, error) {
	total := u.cart.Total()
	if total <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// プリフィル用のプロフィール
	prof, err := u.profile.FetchProfile(ctx)
	if errors.Is(err, gateway.ErrUnauthorized) {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "failed to fetch user details")
	}

	// 決済インテント作成（同じキーなら同じ結果）
	intent, err := u.orders.CreateOrder(ctx, total, u.idGen.NewID())
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "failed to create order")
	}
	if intent.ID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "failed to create order")
	}

	// 決済はpaise単位
	res, err := u.payment.Open(ctx, model.CheckoutOptions{
		Description: "Canteen Order Payment",
		IntentID:    intent.ID,
		Amount:      total * 100,
		Prefill: model.CheckoutPrefill{
			Name:  prof.Username,
			Email: prof.Email,
			Phone: prof.Phone,
		},
	})
	if err != nil {
		// ゲートウェイの説明文をそのまま出す
		return CheckoutOutput{}, NewHTTPError(http.StatusPaymentRequired, err.Error())
	}

	// 成功したときだけカートを空にする
	u.cart.Clear()

	return CheckoutOutput{
		OrderID:   intent.ID,
		PaymentID: res.PaymentID,
		Amount:    total,
	}, nil
}
