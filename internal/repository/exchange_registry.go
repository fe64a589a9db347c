package repository

import (
	"fmt"
	"time"

	"TradingHours/internal/domain/models"
	drepo "TradingHours/internal/domain/repository"
)

// DefaultExchanges returns the built-in exchange table.
func DefaultExchanges() []models.Exchange {
	return []models.Exchange{
		{Code: "NYSE", Name: "New York Stock Exchange", Timezone: "America/New_York", Open: models.TimeOfDay{Hour: 9, Minute: 30}, Close: models.TimeOfDay{Hour: 16}},
		{Code: "NASDAQ", Name: "NASDAQ", Timezone: "America/New_York", Open: models.TimeOfDay{Hour: 9, Minute: 30}, Close: models.TimeOfDay{Hour: 16}},
		{Code: "LSE", Name: "London Stock Exchange", Timezone: "Europe/London", Open: models.TimeOfDay{Hour: 8}, Close: models.TimeOfDay{Hour: 16, Minute: 30}},
		{Code: "JPX", Name: "Tokyo Stock Exchange", Timezone: "Asia/Tokyo", Open: models.TimeOfDay{Hour: 9}, Close: models.TimeOfDay{Hour: 15}},
		{Code: "XETRA", Name: "Frankfurt Stock Exchange", Timezone: "Europe/Berlin", Open: models.TimeOfDay{Hour: 9}, Close: models.TimeOfDay{Hour: 17, Minute: 30}},
		{Code: "HKEX", Name: "Hong Kong Stock Exchange", Timezone: "Asia/Hong_Kong", Open: models.TimeOfDay{Hour: 9, Minute: 30}, Close: models.TimeOfDay{Hour: 16}},
		{Code: "ASX", Name: "Australian Securities Exchange", Timezone: "Australia/Sydney", Open: models.TimeOfDay{Hour: 10}, Close: models.TimeOfDay{Hour: 16}},
		{Code: "TSX", Name: "Toronto Stock Exchange", Timezone: "America/Toronto", Open: models.TimeOfDay{Hour: 9, Minute: 30}, Close: models.TimeOfDay{Hour: 16}},
	}
}

// ExchangeRegistry is an immutable code -> exchange table. Safe for concurrent use.
type ExchangeRegistry struct {
	byCode map[string]models.Exchange
	codes  []string
}

var _ drepo.ExchangeRegistry = (*ExchangeRegistry)(nil)

// NewExchangeRegistry validates defs and loads every timezone once.
func NewExchangeRegistry(defs []models.Exchange) (*ExchangeRegistry, error) {
	r := &ExchangeRegistry{
		byCode: make(map[string]models.Exchange, len(defs)),
		codes:  make([]string, 0, len(defs)),
	}
	for i, ex := range defs {
		if ex.Code == "" {
			return nil, fmt.Errorf("exchange %d: code is required", i)
		}
		if _, dup := r.byCode[ex.Code]; dup {
			return nil, fmt.Errorf("exchange %s: duplicate code", ex.Code)
		}
		if err := checkSession(ex); err != nil {
			return nil, fmt.Errorf("exchange %s: %w", ex.Code, err)
		}
		loc, err := time.LoadLocation(ex.Timezone)
		if err != nil || ex.Timezone == "" {
			return nil, fmt.Errorf("exchange %s: invalid timezone %q", ex.Code, ex.Timezone)
		}
		ex.Location = loc
		r.byCode[ex.Code] = ex
		r.codes = append(r.codes, ex.Code)
	}
	return r, nil
}

func checkSession(ex models.Exchange) error {
	for _, t := range []models.TimeOfDay{ex.Open, ex.Close} {
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return fmt.Errorf("time of day %02d:%02d out of range", t.Hour, t.Minute)
		}
	}
	if ex.Open.Minutes() >= ex.Close.Minutes() {
		return fmt.Errorf("open %s must be before close %s", ex.Open, ex.Close)
	}
	return nil
}

// Lookup is an exact, case-sensitive match.
func (r *ExchangeRegistry) Lookup(code string) (models.Exchange, bool) {
	ex, ok := r.byCode[code]
	return ex, ok
}

// Codes returns the registered codes in definition order.
func (r *ExchangeRegistry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}
