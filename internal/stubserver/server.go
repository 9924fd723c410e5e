// Package stubserver はローカル開発・テスト用のバックエンドスタブ。
// クライアントが消費するエンドポイントだけをインメモリで模倣する。
package stubserver

import (
	"net/http"
	"sync"
	"time"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type stubUser struct {
	ID           string
	Username     string
	Email        string
	Phone        string
	PasswordHash []byte
}

type stubOrder struct {
	ID        string
	Amount    int64
	StatusIdx int // orderStatusesのindex
	Items     []model.OrderItem
	Date      time.Time
	NextID    string
	Rejected  bool
	Paid      bool
}

// 進行順。advanceで1つずつ進む。
var orderStatuses = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusAccepted,
	model.OrderStatusPrepared,
	model.OrderStatusCompleted,
}

type Server struct {
	e         *echo.Echo
	jwtSecret []byte

	mu           sync.Mutex
	users        map[string]stubUser   // email → user
	usersByID    map[string]stubUser   // id → user
	orders       map[string]*stubOrder // id → order
	intentByKey  map[string]string     // idempotency key → order id
	foods        []model.FoodItem
}

// DI
func New(jwtSecret string) *Server {
	s := &Server{
		e:           echo.New(),
		jwtSecret:   []byte(jwtSecret),
		users:       map[string]stubUser{},
		usersByID:   map[string]stubUser{},
		orders:      map[string]*stubOrder{},
		intentByKey: map[string]string{},
		foods:       seedFoods(),
	}
	s.e.HideBanner = true
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.e.Group("/app/api/v1")

	v1.POST("/auth/register", s.register)
	v1.POST("/auth/login", s.login)
	v1.POST("/createOrder", s.createOrder)

	authed := v1.Group("", s.authJWT())
	authed.GET("/profile", s.profile)
	authed.GET("/fooditems", s.listFoodItems)
	authed.GET("/fooditem/:id", s.findFoodItem)
	authed.GET("/orderstatus/:id", s.orderStatus)
	authed.POST("/orderstatus/:id/advance", s.advanceOrder)
	authed.GET("/orders/:userId", s.listOrders)
	authed.POST("/pay", s.pay)
}

// テストから使うためのhttp.Handler
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// 初期メニュー
func seedFoods() []model.FoodItem {
	return []model.FoodItem{
		{ID: "f1", Name: "Veg Cheese Aloo Frankie", Price: 80, Category: "snacks", Rating: 4, Description: "Grilled wrap with spiced potato and cheese", Img: "https://example.com/img/frankie.jpg"},
		{ID: "f2", Name: "Veg Biryani", Price: 120, Category: "meals", Rating: 5, Description: "Fragrant rice with seasonal vegetables", Img: "https://example.com/img/biryani.jpg"},
		{ID: "f3", Name: "Masala Dosa", Price: 60, Category: "breakfast", Rating: 4, Description: "Crispy dosa with potato filling", Img: "https://example.com/img/dosa.jpg"},
		{ID: "f4", Name: "Cold Coffee", Price: 40, Category: "beverages", Rating: 3, Description: "Iced coffee with milk", Img: "https://example.com/img/coffee.jpg"},
	}
}
