package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/gateway"
	"app/internal/infra/httpapi"
	"app/internal/infra/notify"
	"app/internal/infra/session"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// 起動時に組み立てる部品一式
type app struct {
	log      *slog.Logger
	cart     *usecase.CartUsecase
	auth     *usecase.AuthUsecase
	checkout *usecase.CheckoutUsecase
	orders   *usecase.OrdersUsecase
	tracker  *usecase.TrackerUsecase
	catalog  gateway.CatalogGateway
	profile  gateway.ProfileGateway
}

func main() {
	// .envは任意
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	store := session.NewFileStore(cfg.TokenPath)
	api := httpapi.NewClient(cfg.APIBaseURL, store)
	notifier := notify.NewLogNotifier(log)

	cart := usecase.NewCartUsecase()
	a := &app{
		log:      log,
		cart:     cart,
		auth:     usecase.NewAuthUsecase(api, store),
		checkout: usecase.NewCheckoutUsecase(cart, api, api, api, &uuidGenerator{}),
		orders:   usecase.NewOrdersUsecase(api),
		tracker:  usecase.NewTrackerUsecase(api, notifier, log, cfg.PollInterval),
		catalog:  api,
		profile:  api,
	}

	if err := a.run(os.Args[1:]); err != nil {
		// エラーは全部ここでユーザー向けに出す
		if he, ok := usecase.AsHTTPError(err); ok {
			fmt.Fprintln(os.Stderr, "Error:", he.Message)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "register":
		return a.cmdRegister(ctx, args[1:])
	case "menu":
		return a.cmdMenu(ctx)
	case "item":
		return a.cmdItem(ctx, args[1:])
	case "order":
		return a.cmdOrder(ctx, args[1:])
	case "orders":
		return a.cmdOrders(ctx)
	case "track":
		return a.cmdTrack(ctx, args[1:])
	case "logout":
		return a.auth.Logout()
	default:
		usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func usage() {
	fmt.Println(`canteen client

commands:
  login     --email --password
  register  --username --email --phone --password
  menu
  item      <id>
  order     --item <id>:<qty> [--item ...]
  orders
  track     <orderId> [--watch]
  logout`)
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("register", pflag.ContinueOnError)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, gateway.RegisterInput{
		Username: *username,
		Email:    *email,
		Phone:    *phone,
		Password: *password,
	}); err != nil {
		return err
	}
	fmt.Println("Registered. You can sign in now.")
	return nil
}

func (a *app) cmdMenu(ctx context.Context) error {
	items, err := a.catalog.ListFoodItems(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Printf("%-6s %-28s ₹%-6d %s\n", it.ID, it.Name, it.Price, it.Category)
	}
	return nil
}

func (a *app) cmdItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: item <id>")
	}
	it, err := a.catalog.FindFoodItem(ctx, model.ItemID(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("%s\n₹%d  rating %d/5\n%s\n", it.Name, it.Price, it.Rating, it.Description)
	return nil
}

// --item id:qty をカートへ積んでチェックアウトまで行う
func (a *app) cmdOrder(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("order", pflag.ContinueOnError)
	specs := fs.StringArray("item", nil, "item to order, format <id>:<qty>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*specs) == 0 {
		return fmt.Errorf("usage: order --item <id>:<qty> [--item ...]")
	}

	for _, spec := range *specs {
		id, qty, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		it, err := a.catalog.FindFoodItem(ctx, id)
		if err != nil {
			return err
		}
		a.cart.Add(model.NewCartLine(it, qty))
	}

	for _, l := range a.cart.List() {
		fmt.Printf("%dx %-28s ₹%d\n", l.Quantity, l.Title, l.Subtotal())
	}
	fmt.Printf("TOTAL: ₹%d\n", a.cart.Total())

	out, err := a.checkout.PlaceOrder(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Payment successful (payment %s)\nOrder %s placed. Track it with: track %s\n",
		out.PaymentID, out.OrderID, out.OrderID)
	return nil
}

func parseItemSpec(spec string) (model.ItemID, int64, error) {
	parts := strings.SplitN(spec, ":", 2)
	id := model.ItemID(strings.TrimSpace(parts[0]))
	if id == "" {
		return "", 0, fmt.Errorf("invalid item spec: %s", spec)
	}
	var qty int64 = 1
	if len(parts) == 2 {
		n, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("invalid quantity in: %s", spec)
		}
		qty = n
	}
	return id, qty, nil
}

func (a *app) cmdOrders(ctx context.Context) error {
	prof, err := a.profile.FetchProfile(ctx)
	if err != nil {
		return err
	}
	out, err := a.orders.ListOrders(ctx, prof.ID)
	if err != nil {
		return err
	}

	fmt.Println("Ongoing:")
	for _, o := range out.Ongoing {
		fmt.Printf("  %s  %-20s %s\n", o.ID, o.Title, o.Status)
	}
	fmt.Println("Completed:")
	for _, o := range out.History {
		fmt.Printf("  %s  %-20s %s\n", o.ID, o.Title, o.Status)
	}
	return nil
}

func (a *app) cmdTrack(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("track", pflag.ContinueOnError)
	watch := fs.Bool("watch", false, "keep polling until the order reaches a terminal status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: track <orderId> [--watch]")
	}

	done := make(chan struct{}, 1)
	a.tracker.Subscribe(func(st usecase.TrackingState) {
		printTracking(st)
		if st.Terminal || !st.Visible {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	})

	a.tracker.SetOrder(ctx, rest[0])

	if !*watch {
		return nil
	}

	// 画面を閉じる（Ctrl-C）までポーリング、終端でも止まる
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.tracker.Run(runCtx)

	select {
	case <-ctx.Done():
	case <-done:
	}
	return nil
}

var stageLabels = [model.StageCount]string{
	"Order received",
	"Preparing your food",
	"Ready for pickup",
}

func printTracking(st usecase.TrackingState) {
	if !st.Visible {
		fmt.Printf("Order %s: %s (tracking stopped)\n", st.OrderID, st.Status)
		return
	}
	fmt.Printf("Order %s: %s\n", st.OrderID, st.Status)
	for i, label := range stageLabels {
		mark := "[ ]"
		if st.StageIndex >= i {
			mark = "[x]"
		}
		fmt.Printf("  %s %s\n", mark, label)
	}
}
