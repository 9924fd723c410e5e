package gateway

import (
	"context"

	"app/internal/domain/model"
)

// メニュー（フードカタログ）
type CatalogGateway interface {
	ListFoodItems(ctx context.Context) ([]model.FoodItem, error)
	FindFoodItem(ctx context.Context, id model.ItemID) (model.FoodItem, error)
}
