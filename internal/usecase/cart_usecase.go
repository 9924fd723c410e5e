package usecase

import (
	"sync"

	"app/internal/domain/model"
)

// カート変更の購読者（UIの再描画に相当）
type CartObserver func()

// CartUsecase はセッション内のカート状態を持つ。
// 明細はItemIDごとに1件、追加順を保つ。
// グローバルにはせず、依存注入で渡す。
type CartUsecase struct {
	mu        sync.Mutex
	lines     []model.CartLine
	observers []CartObserver
}

func NewCartUsecase() *CartUsecase {
	return &CartUsecase{}
}

// 変更通知を購読する
func (u *CartUsecase) Subscribe(fn CartObserver) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.observers = append(u.observers, fn)
}

// カートに追加。同じItemIDは数量加算で、
// 価格やタイトルは既存の明細のまま（先勝ち）。
// 入力の検証はしない。失敗しない。
func (u *CartUsecase) Add(line model.CartLine) {
	line.ItemID = line.ItemID.Normalized()

	u.mu.Lock()
	merged := false
	for i := range u.lines {
		if u.lines[i].ItemID == line.ItemID {
			u.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		u.lines = append(u.lines, line)
	}
	u.mu.Unlock()

	u.notify()
}

// 数量を指定値にする。0以下なら明細ごと削除。
// 存在しないIDは何もしない（新規作成はAddのみ）。
func (u *CartUsecase) SetQuantity(id model.ItemID, quantity int64) {
	id = id.Normalized()

	u.mu.Lock()
	for i := range u.lines {
		if u.lines[i].ItemID != id {
			continue
		}
		if quantity <= 0 {
			u.lines = append(u.lines[:i], u.lines[i+1:]...)
		} else {
			u.lines[i].Quantity = quantity
		}
		break
	}
	u.mu.Unlock()

	u.notify()
}

// 明細を削除。無ければ何もしない。
func (u *CartUsecase) Remove(id model.ItemID) {
	id = id.Normalized()

	u.mu.Lock()
	for i := range u.lines {
		if u.lines[i].ItemID == id {
			u.lines = append(u.lines[:i], u.lines[i+1:]...)
			break
		}
	}
	u.mu.Unlock()

	u.notify()
}

// 全明細を削除
func (u *CartUsecase) Clear() {
	u.mu.Lock()
	u.lines = nil
	u.mu.Unlock()

	u.notify()
}

// 合計金額。空なら0。
func (u *CartUsecase) Total() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var total int64 = 0
	for _, l := range u.lines {
		total += l.Subtotal()
	}
	return total
}

// 追加順の明細スナップショット
func (u *CartUsecase) List() []model.CartLine {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]model.CartLine, len(u.lines))
	copy(out, u.lines)
	return out
}

// 購読者へ通知。ロック外で呼ぶ（購読者がList等を呼べるように）。
func (u *CartUsecase) notify() {
	u.mu.Lock()
	obs := make([]CartObserver, len(u.observers))
	copy(obs, u.observers)
	u.mu.Unlock()

	for _, fn := range obs {
		fn()
	}
}
