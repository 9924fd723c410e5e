package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

type OrdersUsecase struct {
	orders gateway.OrderGateway
}

// DI
func NewOrdersUsecase(orders gateway.OrderGateway) *OrdersUsecase {
	return &OrdersUsecase{orders: orders}
}

// Ongoing/Completedの2タブに分けて返す
type OrdersOutput struct {
	Ongoing []model.OrderSummary `json:"ongoing"`
	History []model.OrderSummary `json:"history"`
}

func (u *OrdersUsecase) ListOrders(ctx context.Context, userID string) (OrdersOutput, error) {
	if userID == "" {
		return OrdersOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	list, err := u.orders.ListByUser(ctx, userID)
	if errors.Is(err, gateway.ErrUnauthorized) {
		return OrdersOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return OrdersOutput{}, NewHTTPError(http.StatusBadGateway, "failed to fetch orders")
	}

	out := OrdersOutput{
		Ongoing: []model.OrderSummary{},
		History: []model.OrderSummary{},
	}
	for _, o := range list {
		if model.IsTerminal(o.Status) {
			out.History = append(out.History, o)
		} else {
			out.Ongoing = append(out.Ongoing, o)
		}
	}
	return out, nil
}
