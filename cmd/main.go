package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Juanelc4734k/checkout-service/internal/app"
	"github.com/Juanelc4734k/checkout-service/internal/client"
	"github.com/Juanelc4734k/checkout-service/internal/config"
	"github.com/Juanelc4734k/checkout-service/internal/events"
	"github.com/Juanelc4734k/checkout-service/internal/handler"
	"github.com/Juanelc4734k/checkout-service/internal/postgres"
	"github.com/Juanelc4734k/checkout-service/internal/repo"
	"github.com/Juanelc4734k/checkout-service/internal/service"
	"github.com/Juanelc4734k/checkout-service/pkg/cache"
	"github.com/Juanelc4734k/checkout-service/pkg/trm"
	"github.com/Juanelc4734k/checkout-service/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Checkout Service API
// @version         1.0
// @description     Order placement and cart checkout HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	cartRepo := repo.NewCartRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	paymentClient := client.NewPaymentClient(&http.Client{Timeout: conf.Payment.Timeout}, conf.Payment.URL)
	productClient := client.NewProductClient(&http.Client{Timeout: conf.Products.Timeout}, conf.Products.URL)
	publisher := events.NewPublisher(logger, conf.Kafka.Brokers, conf.Kafka.Topic, conf.Kafka.BatchTimeout)

	checkoutService := service.NewCheckoutService(
		logger, txManager, orderRepo, paymentClient, publisher, orderCache,
		utils.RetryConfig{
			MaxAttempts:  conf.Payment.RetryMaxAttempts,
			InitialDelay: conf.Payment.RetryInitialDelay,
			Multiplier:   2,
		},
	)
	cartService := service.NewCartService(logger, cartRepo, productClient)

	orderHandler := handler.NewOrderHandler(logger, checkoutService)
	cartHandler := handler.NewCartHandler(logger, cartService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(orderHandler, cartHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
