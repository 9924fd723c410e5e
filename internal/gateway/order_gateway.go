package gateway

import (
	"context"

	"app/internal/domain/model"
)

// 注文系エンドポイント
type OrderGateway interface {
	// 決済インテント作成。同じキーなら同じ結果。
	CreateOrder(ctx context.Context, amount int64, idempotencyKey string) (model.PaymentIntent, error)
	FetchStatus(ctx context.Context, orderID string) (model.OrderSnapshot, error)
	ListByUser(ctx context.Context, userID string) ([]model.OrderSummary, error)
}

// 決済ゲートウェイ（Razorpay相当、中身は不透明）
type PaymentGateway interface {
	Open(ctx context.Context, opts model.CheckoutOptions) (model.PaymentResult, error)
}
