package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Env      string `envconfig:"ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`

	// JWT
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHr int    `envconfig:"JWT_EXPIRE_HR" default:"24"`

	// RabbitMQ (optional; domain events disabled when empty)
	RabbitURL     string `envconfig:"RABBIT_URL" default:""`
	EventExchange string `envconfig:"EVENT_EXCHANGE" default:"booking.exchange"`

	// Tracing (optional; disabled when empty)
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
