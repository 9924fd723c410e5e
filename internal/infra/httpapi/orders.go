package httpapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (c *Client) CreateOrder(ctx context.Context, amount int64, idempotencyKey string) (model.PaymentIntent, error) {
	var intent model.PaymentIntent
	err := c.doJSON(ctx, http.MethodPost, "/app/api/v1/createOrder", createOrderRequest{
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
	}, &intent, false)
	if err != nil {
		return model.PaymentIntent{}, err
	}
	return intent, nil
}

func (c *Client) FetchStatus(ctx context.Context, orderID string) (model.OrderSnapshot, error) {
	var snap model.OrderSnapshot
	if err := c.doJSON(ctx, http.MethodGet, "/app/api/v1/orderstatus/"+orderID, nil, &snap, true); err != nil {
		return model.OrderSnapshot{}, err
	}
	return snap, nil
}

func (c *Client) ListByUser(ctx context.Context, userID string) ([]model.OrderSummary, error) {
	var list []model.OrderSummary
	if err := c.doJSON(ctx, http.MethodGet, "/app/api/v1/orders/"+userID, nil, &list, true); err != nil {
		return nil, err
	}
	return list, nil
}

var _ gateway.OrderGateway = (*Client)(nil)
