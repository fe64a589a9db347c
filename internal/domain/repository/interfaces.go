package repository

import (
	"context"

	"TradingHours/internal/domain/models"
)

// ExchangeRegistry is the read-only table of known exchanges.
type ExchangeRegistry interface {
	Lookup(code string) (models.Exchange, bool)
	Codes() []string
}

type RosterSource interface {
	Load(ctx context.Context) ([]models.Subscriber, error)
}

// Mailer dispatches one email and returns the provider message id.
type Mailer interface {
	Send(ctx context.Context, email *models.Email) (string, error)
}

type Metrics interface {
	RecordEmail(status string)
	RecordError(kind string)
	RecordMarketState(exchange string, open bool)
	RecordLatency(op string, seconds float64)
}
