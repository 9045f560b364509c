package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Redis
	Kafka
	Gateway
	Collaborators
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"7010"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"72h"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.checkout.created,payments.confirmed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Gateway holds the external payment processor credentials and redirect URLs.
// The webhook signing secret is shared with the gateway and verified against
// the raw request body.
type Gateway struct {
	BaseURL          string        `env:"GATEWAY_BASE_URL" envDefault:"https://api.paygate.example.com"`
	SecretKey        string        `env:"GATEWAY_SECRET_KEY"`
	PublishableKey   string        `env:"GATEWAY_PUBLISHABLE_KEY"`
	WebhookSecret    string        `env:"GATEWAY_WEBHOOK_SECRET"`
	DefaultCurrency  string        `env:"GATEWAY_DEFAULT_CURRENCY" envDefault:"usd"`
	SuccessURL       string        `env:"PAYMENT_SUCCESS_URL" envDefault:"http://localhost:5173/payment/success"`
	CancelURL        string        `env:"PAYMENT_CANCEL_URL" envDefault:"http://localhost:5173/payment/cancel"`
	Timeout          time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
	WebhookTolerance time.Duration `env:"GATEWAY_WEBHOOK_TOLERANCE" envDefault:"5m"`
}

// Collaborators holds the base URLs and call policy for the reservation and
// email services.
type Collaborators struct {
	ReservationServiceURL string        `env:"RESERVATION_SERVICE_URL" envDefault:"http://localhost:7009"`
	EmailServiceURL       string        `env:"EMAIL_SERVICE_URL" envDefault:"http://localhost:7011"`
	Timeout               time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"5s"`

	RetryMaxAttempts int           `env:"COLLABORATOR_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"COLLABORATOR_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay    time.Duration `env:"COLLABORATOR_RETRY_MAX_DELAY" envDefault:"2s"`
	RetryJitter      bool          `env:"COLLABORATOR_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (c Collaborators) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: c.RetryMaxAttempts,
		BaseDelay:   c.RetryBaseDelay,
		MaxDelay:    c.RetryMaxDelay,
		Jitter:      c.RetryJitter,
	}
}
