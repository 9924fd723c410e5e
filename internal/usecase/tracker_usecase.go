package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"app/internal/domain/model"
	"app/internal/gateway"
)

// トラッキングバブルに出す状態のスナップショット
type TrackingState struct {
	OrderID    string
	Status     model.OrderStatus
	StageIndex int
	Terminal   bool
	// バブルを表示するか。追跡対象なし、または終端（次注文なし）でfalse。
	Visible   bool
	Items     []model.OrderItem
	OrderDate time.Time
}

type TrackerObserver func(TrackingState)

// TrackerUsecase は注文ステータスのポーリングと進捗管理。
//
//   - 進捗indexは同じ注文の間は後退しない
//   - 未知のステータスはindexを動かさない
//   - ステータスが変わったときだけ通知を出す（毎ポーリングではない）
//   - 終端でポーリングを止める。レスポンスに次注文があればそちらへ切替えて進捗0から
//   - 取得失敗はログだけ残して前回の表示を維持（次のtickで再試行）
type TrackerUsecase struct {
	orders   gateway.OrderGateway
	notifier gateway.Notifier
	log      *slog.Logger
	interval time.Duration

	mu         sync.Mutex
	state      TrackingState
	lastStatus model.OrderStatus // 前回見たステータス（正規形）。""は未観測。
	halted     bool              // 終端に達して追跡停止
	observers  []TrackerObserver
}

// DI
func NewTrackerUsecase(
	orders gateway.OrderGateway,
	notifier gateway.Notifier,
	log *slog.Logger,
	interval time.Duration,
) *TrackerUsecase {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &TrackerUsecase{
		orders:   orders,
		notifier: notifier,
		log:      log,
		interval: interval,
		state:    TrackingState{},
		halted:   true, // 注文IDが来るまでIdle
	}
}

// 状態変化を購読する
func (u *TrackerUsecase) Subscribe(fn TrackerObserver) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.observers = append(u.observers, fn)
}

// 現在の状態
func (u *TrackerUsecase) Snapshot() TrackingState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// 追跡する注文を切替える。進捗は0に戻る。
// すぐに1回取得する（次のtickを待たない）。
func (u *TrackerUsecase) SetOrder(ctx context.Context, orderID string) {
	u.mu.Lock()
	u.state = TrackingState{
		OrderID: orderID,
		Visible: orderID != "",
	}
	u.lastStatus = ""
	u.halted = orderID == ""
	u.mu.Unlock()

	u.emit()

	if orderID != "" {
		u.Poll(ctx)
	}
}

// 固定間隔でPollを回す。ctxのキャンセルで必ず止まる
// （画面離脱時のタイマー解放に相当）。
func (u *TrackerUsecase) Run(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.Poll(ctx)
		}
	}
}

// 1回分の取得＋状態遷移。同期的に行うので、
// 古いレスポンスが新しい状態を上書きすることはない。
func (u *TrackerUsecase) Poll(ctx context.Context) {
	u.mu.Lock()
	orderID := u.state.OrderID
	halted := u.halted
	u.mu.Unlock()

	if halted || orderID == "" {
		return
	}

	snap, err := u.orders.FetchStatus(ctx, orderID)
	if err != nil {
		// ベストエフォート：表示は前回のまま、次のtickで再試行
		u.log.Warn("order status fetch failed", "order_id", orderID, "err", err)
		return
	}

	u.apply(orderID, snap)
}

// 取得結果を状態へ反映する
func (u *TrackerUsecase) apply(requestedID string, snap model.OrderSnapshot) {
	u.mu.Lock()

	// 切替え済みの注文のレスポンスは捨てる
	if u.state.OrderID != requestedID {
		u.mu.Unlock()
		return
	}
	if snap.OrderID != "" && snap.OrderID != requestedID {
		u.mu.Unlock()
		return
	}

	status := model.NormalizeStatus(string(snap.Status))
	changed := u.lastStatus != "" && status != u.lastStatus
	u.lastStatus = status

	u.state.Status = status
	if len(snap.Items) > 0 {
		u.state.Items = snap.Items
	}
	if !snap.OrderDate.IsZero() {
		u.state.OrderDate = snap.OrderDate
	}

	// 進捗indexは前進のみ。未知のステータスは動かさない。
	if idx, ok := model.StageIndex(status); ok && idx > u.state.StageIndex {
		u.state.StageIndex = idx
	}

	var notifyStatus model.OrderStatus
	if changed {
		notifyStatus = status
	}

	if model.IsTerminal(status) {
		u.state.Terminal = true
		if snap.NextOrderID != "" && snap.NextOrderID != requestedID {
			// 次の注文へ切替えて進捗0から
			u.state = TrackingState{
				OrderID: snap.NextOrderID,
				Visible: true,
			}
			u.lastStatus = ""
		} else {
			// 追跡終了。バブルは消す。
			u.state.Visible = false
			u.halted = true
		}
	}

	u.mu.Unlock()

	if notifyStatus != "" {
		u.notifier.Notify(
			"Order update",
			fmt.Sprintf("Order %s is now %s", requestedID, notifyStatus),
		)
	}
	u.emit()
}

// 購読者へ現在の状態を配る
func (u *TrackerUsecase) emit() {
	u.mu.Lock()
	st := u.state
	obs := make([]TrackerObserver, len(u.observers))
	copy(obs, u.observers)
	u.mu.Unlock()

	for _, fn := range obs {
		fn(st)
	}
}
