package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stayhub/payment-service/config"
	"github.com/stayhub/payment-service/internal/clients"
	"github.com/stayhub/payment-service/internal/dedup"
	"github.com/stayhub/payment-service/internal/gateway"
	handlers "github.com/stayhub/payment-service/internal/handlers"
	"github.com/stayhub/payment-service/internal/metrics"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stayhub/payment-service/internal/publisher"
	"github.com/stayhub/payment-service/internal/repository/posgrest"
	"github.com/stayhub/payment-service/internal/service"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.PaymentAttempt{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	attemptRepo := posgrest.New[models.PaymentAttempt](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	eventPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.SecretKey, cfg.Gateway.Timeout)
	reservationClient := clients.NewReservationClient(cfg.Collaborators.ReservationServiceURL, cfg.Collaborators.Timeout, cfg.Collaborators.GetRetryConfig())
	notificationClient := clients.NewNotificationClient(cfg.Collaborators.EmailServiceURL, cfg.Collaborators.Timeout)

	paymentService := service.NewPaymentService(
		gatewayClient,
		reservationClient,
		notificationClient,
		attemptRepo,
		eventPublisher,
		service.Options{
			SuccessURL:      cfg.Gateway.SuccessURL,
			CancelURL:       cfg.Gateway.CancelURL,
			PublishableKey:  cfg.Gateway.PublishableKey,
			DefaultCurrency: cfg.Gateway.DefaultCurrency,
		},
	)

	dedupStore := dedup.NewRedisStore(redisClient, cfg.Redis.DedupTTL)
	webhookProcessor := service.NewWebhookProcessor(paymentService, dedupStore, cfg.Gateway.WebhookSecret, cfg.Gateway.WebhookTolerance)

	paymentHandler := handlers.NewPaymentHandler(paymentService, webhookProcessor)

	metrics.RegisterMetrics()

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
