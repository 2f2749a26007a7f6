package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, broker addresses, etc.)
// - default: Values common across all environments (timezone, limits, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Booking   BookingConfig
	Notifier  NotifierConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// BookingConfig: dates picked on the form are calendar days in this zone
type BookingConfig struct {
	TimeZone       string `envconfig:"BOOKING_TIMEZONE" default:"America/New_York"`
	TimeZoneOffset int    `envconfig:"BOOKING_TIMEZONE_OFFSET" default:"-18000"`
	CatalogPath    string `envconfig:"BOOKING_CATALOG_PATH"` // empty: built-in price list
}

func (c BookingConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

const (
	NotifierLog   = "log"
	NotifierRedis = "redis"
	NotifierKafka = "kafka"
)

type NotifierConfig struct {
	Kind          string        `envconfig:"NOTIFIER_KIND" default:"log"`
	Timeout       time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
	RedisAddr     string        `envconfig:"NOTIFIER_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"NOTIFIER_REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"NOTIFIER_REDIS_DB" default:"0"`
	RedisChannel  string        `envconfig:"NOTIFIER_REDIS_CHANNEL" default:"appointment-requests"`
	KafkaBrokers  []string      `envconfig:"NOTIFIER_KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic    string        `envconfig:"NOTIFIER_KAFKA_TOPIC" default:"appointment.requested"`
}

// RateLimitConfig applies per client IP to request submission
type RateLimitConfig struct {
	SubmitPerMinute int           `envconfig:"RATE_LIMIT_SUBMIT_PER_MINUTE" default:"10"`
	SubmitBurst     int           `envconfig:"RATE_LIMIT_SUBMIT_BURST" default:"3"`
	IdleTTL         time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"` // idle clients are forgotten after this
}

// LoadConfig reads .env when present; real environment variables win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Booking: BookingConfig{
			TimeZone:       "America/New_York",
			TimeZoneOffset: -18000,
		},
		Notifier: NotifierConfig{
			Kind:    NotifierLog,
			Timeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: 600,
			SubmitBurst:     100,
			IdleTTL:         10 * time.Minute,
		},
	}
}
