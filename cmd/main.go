package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"qr-ordering/internal/config"
	"qr-ordering/internal/database"
	"qr-ordering/internal/httpx"
	"qr-ordering/internal/logger"
	"qr-ordering/internal/messaging"
	"qr-ordering/internal/services/dashboard"
	"qr-ordering/internal/services/menu"
	"qr-ordering/internal/services/notification"
	"qr-ordering/internal/services/order"
	"qr-ordering/internal/store"
)

func main() {
	var (
		mode          = flag.String("mode", "", "Service mode: api-service or notification-subscriber")
		port          = flag.Int("port", 3000, "HTTP port for the API service")
		storage       = flag.String("storage", "memory", "Storage backend: memory or postgres")
		configPath    = flag.String("config", "config.yaml", "Path to the config file")
		maxConcurrent = flag.Int("max-concurrent", 50, "Maximum concurrent order submissions")
	)
	flag.Parse()

	// Optional .env for local development; missing file is fine
	_ = godotenv.Load()

	if *mode == "" {
		fmt.Fprintln(os.Stderr, "Usage: qr-ordering --mode=<api-service|notification-subscriber> [--port=3000] [--storage=memory|postgres]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "api-service":
		err = runAPIService(ctx, cfg, *port, *storage, *maxConcurrent)
	case "notification-subscriber":
		err = runNotificationSubscriber(ctx, cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Service failed: %v\n", err)
		os.Exit(1)
	}
}

// runAPIService starts the HTTP API serving the menu, orders and dashboard
func runAPIService(ctx context.Context, cfg *config.Config, port int, storage string, maxConcurrent int) error {
	log := logger.New("api-service")
	requestID := logger.GenerateRequestID()

	st, cleanup, err := buildStore(ctx, cfg, storage, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// The API stays up without a broker; order events are then only logged
	var publisher *messaging.Publisher
	conn, err := messaging.New(cfg, log)
	if err != nil {
		log.Error("rabbitmq_unavailable", "RabbitMQ unavailable, running without event publishing", requestID, err, nil)
	} else {
		defer conn.Close()
		publisher = messaging.NewPublisher(conn, log)
	}

	orderService := order.NewService(st, publisher, log, maxConcurrent)
	menuService := menu.NewService(st, log)
	dashboardService := dashboard.NewService(st, cfg.Restaurant.ID)

	mux := http.NewServeMux()
	order.NewHandler(orderService).Register(mux)
	menu.NewHandler(menuService, cfg.Restaurant.ID).Register(mux)
	dashboard.NewHandler(dashboardService).Register(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK
		if !orderService.HealthCheck(r.Context()) {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		httpx.WriteJSON(w, code, map[string]interface{}{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	server := httpx.NewServer(port, httpx.WithLogging(log, mux))

	log.Info("service_started", fmt.Sprintf("API service listening on port %d", port), requestID, map[string]interface{}{
		"port":    port,
		"storage": storage,
	})

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("graceful_shutdown", "API service stopped", requestID, nil)
	return nil
}

// runNotificationSubscriber starts the console notification consumer
func runNotificationSubscriber(ctx context.Context, cfg *config.Config) error {
	log := logger.New("notification-subscriber")

	ordersConn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer ordersConn.Close()

	notificationsConn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer notificationsConn.Close()

	ordersConsumer := messaging.NewConsumer(ordersConn, log, messaging.OrdersQueue, "notification-orders", 10)
	statusConsumer := messaging.NewConsumer(notificationsConn, log, messaging.NotificationsQueue, "notification-status", 10)

	subscriber := notification.NewSubscriber(ordersConsumer, statusConsumer, log)
	return subscriber.Start(ctx)
}

// buildStore creates the requested storage backend. The memory store comes
// pre-seeded with the demo restaurant; postgres runs migrations on startup.
func buildStore(ctx context.Context, cfg *config.Config, storage string, log *logger.Logger) (store.Store, func(), error) {
	switch storage {
	case "memory":
		ms := store.NewMemoryStore()
		ms.Seed()
		return ms, func() {}, nil
	case "postgres":
		db, err := database.New(cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store.NewPostgresStore(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", storage)
	}
}
