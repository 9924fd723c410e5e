package usecase_test

import (
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func line(id string, title string, price int64, qty int64) model.CartLine {
	return model.CartLine{
		ItemID:    model.ItemID(id),
		Title:     title,
		UnitPrice: price,
		Quantity:  qty,
	}
}

func TestCartUsecase_Add_MergesSameID(t *testing.T) {
	cart := usecase.NewCartUsecase()

	cart.Add(line("1", "Frankie", 50, 2))
	cart.Add(line("1", "Frankie (renamed)", 999, 1))

	got := cart.List()
	assert.Len(t, got, 1)
	assert.Equal(t, model.ItemID("1"), got[0].ItemID)
	assert.Equal(t, int64(3), got[0].Quantity)
	// 価格・タイトルは先勝ち
	assert.Equal(t, "Frankie", got[0].Title)
	assert.Equal(t, int64(50), got[0].UnitPrice)
	assert.Equal(t, int64(150), cart.Total())
}

func TestCartUsecase_Add_DistinctIDsKeepInsertionOrder(t *testing.T) {
	cart := usecase.NewCartUsecase()

	cart.Add(line("b", "B", 10, 1))
	cart.Add(line("a", "A", 20, 1))
	cart.Add(line("b", "B", 10, 2))
	cart.Add(line("c", "C", 30, 1))

	got := cart.List()
	assert.Len(t, got, 3)
	assert.Equal(t, model.ItemID("b"), got[0].ItemID)
	assert.Equal(t, model.ItemID("a"), got[1].ItemID)
	assert.Equal(t, model.ItemID("c"), got[2].ItemID)
}

// 数量加算の総和プロパティ
func TestCartUsecase_Add_QuantitySums(t *testing.T) {
	cart := usecase.NewCartUsecase()

	adds := []int64{1, 4, 2, 3}
	var want int64 = 0
	for _, q := range adds {
		cart.Add(line("x", "X", 5, q))
		want += q
	}

	got := cart.List()
	assert.Len(t, got, 1)
	assert.Equal(t, want, got[0].Quantity)
}

func TestCartUsecase_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))

	cart.SetQuantity("1", 0)

	assert.Empty(t, cart.List())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCartUsecase_SetQuantity_NegativeRemovesLine(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))

	cart.SetQuantity("1", -1)

	assert.Empty(t, cart.List())
}

func TestCartUsecase_SetQuantity_UpdatesValue(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))

	cart.SetQuantity("1", 7)

	got := cart.List()
	assert.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].Quantity)
	assert.Equal(t, int64(350), cart.Total())
}

// 存在しないIDは何もしない（新規明細は作らない）
func TestCartUsecase_SetQuantity_MissingIDIsNoop(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))

	cart.SetQuantity("nope", 5)

	got := cart.List()
	assert.Len(t, got, 1)
	assert.Equal(t, model.ItemID("1"), got[0].ItemID)
}

func TestCartUsecase_Remove(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))
	cart.Add(line("2", "Y", 30, 1))

	before := cart.Total()
	cart.Add(line("3", "Z", 10, 4))
	cart.Remove("3")

	// 追加→削除で合計は元どおり
	assert.Equal(t, before, cart.Total())

	// 無いIDの削除は何もしない
	cart.Remove("nope")
	assert.Len(t, cart.List(), 2)
}

func TestCartUsecase_Clear(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))
	cart.Add(line("2", "Y", 30, 1))

	cart.Clear()

	assert.Empty(t, cart.List())
	assert.Equal(t, int64(0), cart.Total())

	// 空でもClearできる
	cart.Clear()
	assert.Empty(t, cart.List())
}

func TestCartUsecase_EmptyTotalIsZero(t *testing.T) {
	cart := usecase.NewCartUsecase()
	assert.Equal(t, int64(0), cart.Total())
	assert.Empty(t, cart.List())
}

// すべての変更操作が購読者へ通知される
func TestCartUsecase_MutationsNotifyObservers(t *testing.T) {
	cart := usecase.NewCartUsecase()

	calls := 0
	cart.Subscribe(func() { calls++ })

	cart.Add(line("1", "X", 50, 1)) // 1
	cart.SetQuantity("1", 3)        // 2
	cart.Remove("1")                // 3
	cart.Clear()                    // 4

	assert.Equal(t, 4, calls)
}

// Listは読み取り専用のスナップショット
func TestCartUsecase_ListReturnsCopy(t *testing.T) {
	cart := usecase.NewCartUsecase()
	cart.Add(line("1", "X", 50, 2))

	got := cart.List()
	got[0].Quantity = 999

	assert.Equal(t, int64(2), cart.List()[0].Quantity)
}
