package httpapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

func (c *Client) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := c.doJSON(ctx, http.MethodGet, "/app/api/v1/fooditems", nil, &items, true); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FindFoodItem(ctx context.Context, id model.ItemID) (model.FoodItem, error) {
	var item model.FoodItem
	if err := c.doJSON(ctx, http.MethodGet, "/app/api/v1/fooditem/"+id.String(), nil, &item, true); err != nil {
		return model.FoodItem{}, err
	}
	return item, nil
}

var _ gateway.CatalogGateway = (*Client)(nil)
