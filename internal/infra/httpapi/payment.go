package httpapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

// 決済実行。実機のゲートウェイSDKの代わりに
// バックエンドの決済エンドポイントへ投げる。
func (c *Client) Open(ctx context.Context, opts model.CheckoutOptions) (model.PaymentResult, error) {
	var res model.PaymentResult
	if err := c.doJSON(ctx, http.MethodPost, "/app/api/v1/pay", opts, &res, true); err != nil {
		return model.PaymentResult{}, err
	}
	return res, nil
}

var _ gateway.PaymentGateway = (*Client)(nil)
