package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`

	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// JWT
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// RabbitMQ
	RabbitURL       string `envconfig:"RABBIT_URL" required:"true"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"payment.exchange"`
	PaymentQueue    string `envconfig:"PAYMENT_QUEUE" default:"booking.payment.q"`
	NotifyQueue     string `envconfig:"NOTIFY_QUEUE" default:"notification.q"`
	NotifyDLX       string `envconfig:"NOTIFY_DLX" default:"notification.dlx"`
	NotifyDLQ       string `envconfig:"NOTIFY_DLQ" default:"notification.q.dlq"`

	// Tracing
	ServiceName string `envconfig:"SERVICE_NAME" default:"padel-booking"`
	TracingOn   bool   `envconfig:"TRACING_ON" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
