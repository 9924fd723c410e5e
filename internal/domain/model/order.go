package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPrepared  OrderStatus = "prepared"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRejected  OrderStatus = "rejected"
)

// 進捗段階の数（pending → accepted → prepared）
const StageCount = 3

// ステータス文字列→進捗index。
// リビジョン間の別名もここで吸収する。大文字小文字は区別しない。
var stageIndexByStatus = map[OrderStatus]int{
	"pending":          0,
	"not received":     0,
	"accepted":         1,
	"preparing":        1,
	"prepared":         2,
	"ready for pickup": 2,
}

// 小文字化＋前後空白除去
func NormalizeStatus(s string) OrderStatus {
	return OrderStatus(strings.ToLower(strings.TrimSpace(s)))
}

// 進捗indexを返す。未知のステータスは ok=false。
func StageIndex(s OrderStatus) (int, bool) {
	idx, ok := stageIndexByStatus[NormalizeStatus(string(s))]
	return idx, ok
}

// completed / rejected は終端
func IsTerminal(s OrderStatus) bool {
	switch NormalizeStatus(string(s)) {
	case OrderStatusCompleted, OrderStatusRejected:
		return true
	default:
		return false
	}
}

// 注文の明細
type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// 注文ステータス取得のレスポンス
type OrderSnapshot struct {
	OrderID     string      `json:"orderId"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	OrderDate   time.Time   `json:"orderDate"`
	NextOrderID string      `json:"nextOrderId"`
}

// 注文一覧の1件
type OrderSummary struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Status    OrderStatus `json:"status"`
	OrderDate time.Time   `json:"orderDate"`
	Total     int64       `json:"total"`
}
