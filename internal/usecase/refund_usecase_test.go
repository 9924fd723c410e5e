package usecase_test

import (
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestRefundUsecase_Request(t *testing.T) {
	uc := usecase.NewRefundUsecase()

	assert.False(t, uc.Status("o1"))

	out := uc.Request("o1", []model.OrderItem{
		{Name: "Frankie", Price: 50, Quantity: 2},
		{Name: "Samosa", Price: 15, Quantity: 3},
	})

	assert.Equal(t, "o1", out.OrderID)
	assert.Equal(t, int64(145), out.Total)
	assert.True(t, out.Granted)
	assert.True(t, uc.Status("o1"))

	// 他の注文には影響しない
	assert.False(t, uc.Status("o2"))
}

func TestRefundUsecase_Request_Idempotent(t *testing.T) {
	uc := usecase.NewRefundUsecase()

	items := []model.OrderItem{{Name: "Frankie", Price: 50, Quantity: 1}}
	first := uc.Request("o1", items)
	second := uc.Request("o1", items)

	assert.Equal(t, first, second)
	assert.True(t, uc.Status("o1"))
}

func TestRefundUsecase_Request_NoItems(t *testing.T) {
	uc := usecase.NewRefundUsecase()

	out := uc.Request("o1", nil)

	assert.Equal(t, int64(0), out.Total)
	assert.True(t, out.Granted)
}
