package stubserver

import (
	"net/http"
	"time"

	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

// 決済インテント作成。同じidempotency keyなら既存のidを返す。
func (s *Server) createOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.IdempotencyKey != "" {
		if id, found := s.intentByKey[req.IdempotencyKey]; found {
			return c.JSON(http.StatusOK, model.PaymentIntent{ID: id})
		}
	}

	o := &stubOrder{
		ID:     uuid.NewString(),
		Amount: req.Amount,
		Date:   time.Now(),
	}
	s.orders[o.ID] = o
	if req.IdempotencyKey != "" {
		s.intentByKey[req.IdempotencyKey] = o.ID
	}

	return c.JSON(http.StatusOK, model.PaymentIntent{ID: o.ID})
}

func (s *Server) orderStatus(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	o, exists := s.orders[id]
	if !exists {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, snapshotOf(o))
}

func snapshotOf(o *stubOrder) model.OrderSnapshot {
	status := orderStatuses[o.StatusIdx]
	if o.Rejected {
		status = model.OrderStatusRejected
	}
	return model.OrderSnapshot{
		OrderID:     o.ID,
		Status:      status,
		Items:       o.Items,
		OrderDate:   o.Date,
		NextOrderID: o.NextID,
	}
}

type advanceRequest struct {
	// trueなら却下で終端にする
	Reject bool `json:"reject"`
}

// ステータスを1段階進める（開発用）
func (s *Server) advanceOrder(c echo.Context) error {
	id := c.Param("id")

	var req advanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, exists := s.orders[id]
	if !exists {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	if req.Reject {
		o.Rejected = true
	} else if o.StatusIdx < len(orderStatuses)-1 {
		o.StatusIdx++
	}

	return c.JSON(http.StatusOK, snapshotOf(o))
}

func (s *Server) listOrders(c echo.Context) error {
	// スタブはユーザー別に持たないので全件返す
	_ = c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.OrderSummary, 0, len(s.orders))
	for _, o := range s.orders {
		snap := snapshotOf(o)
		title := "Order"
		if len(o.Items) > 0 {
			title = o.Items[0].Name
		}
		list = append(list, model.OrderSummary{
			ID:        o.ID,
			Title:     title,
			Status:    snap.Status,
			OrderDate: o.Date,
			Total:     o.Amount,
		})
	}
	return c.JSON(http.StatusOK, list)
}

type payRequest struct {
	IntentID string `json:"order_id"`
}

type payResponse struct {
	PaymentID string `json:"payment_id"`
}

// 決済実行（スタブは常に成功、二重決済だけ拒否）
func (s *Server) pay(c echo.Context) error {
	var req payRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, exists := s.orders[req.IntentID]
	if !exists {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order_id"})
	}
	if o.Paid {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "already paid"})
	}
	o.Paid = true

	return c.JSON(http.StatusOK, payResponse{PaymentID: "pay_" + uuid.NewString()})
}
