// Package markethours decides whether an exchange is open at an instant and when it
// next changes state. All calendar arithmetic happens in the exchange's own zone.
package markethours

import (
	"errors"
	"fmt"
	"time"

	"TradingHours/internal/domain/models"
	drepo "TradingHours/internal/domain/repository"
)

// ErrInvalidTimezone is returned when a viewer timezone cannot be loaded.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Session is the outcome of evaluating one exchange definition at an instant.
// Next is the upcoming close when Open, otherwise the upcoming open.
type Session struct {
	Open bool
	Next time.Time
}

// Resolver computes MarketStatus values from a registry. It holds no mutable state.
type Resolver struct {
	registry drepo.ExchangeRegistry
}

func NewResolver(registry drepo.ExchangeRegistry) *Resolver {
	return &Resolver{registry: registry}
}

// Codes lists the supported exchange codes in registry order.
func (r *Resolver) Codes() []string {
	return r.registry.Codes()
}

// LoadTimezone loads an IANA zone, rejecting the empty string and "Local".
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ResolveIn is Resolve with the viewer zone given by name.
func (r *Resolver) ResolveIn(code, viewerTimezone string, now time.Time) (models.MarketStatus, error) {
	viewer, err := LoadTimezone(viewerTimezone)
	if err != nil {
		return models.MarketStatus{}, err
	}
	return r.Resolve(code, viewer, now), nil
}

// Resolve returns the status of code at now with transition times in viewer.
// Unknown codes yield a closed status flagged Unknown rather than an error.
func (r *Resolver) Resolve(code string, viewer *time.Location, now time.Time) models.MarketStatus {
	ex, ok := r.registry.Lookup(code)
	if !ok {
		return models.MarketStatus{
			Exchange: code,
			Name:     models.UnknownExchangeName,
			State:    models.MarketClosed,
			Unknown:  true,
		}
	}

	sess := NextTransition(ex, now)
	remaining := sess.Next.Sub(now)
	at := sess.Next.In(viewer)

	st := models.MarketStatus{
		Exchange:   ex.Code,
		Name:       ex.Name,
		HoursUntil: HoursUntil(remaining),
	}
	if sess.Open {
		st.State = models.MarketOpen
		st.ClosesAt = &at
		st.TimeUntilClose = remaining
	} else {
		st.State = models.MarketClosed
		st.OpensAt = &at
		st.TimeUntilOpen = remaining
	}
	return st
}

// NextTransition evaluates ex at now. The session is [open, close): the open instant
// belongs to the session and the close instant does not.
func NextTransition(ex models.Exchange, now time.Time) Session {
	loc := ex.Location
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation(ex.Timezone); err != nil {
			loc = time.UTC
		}
	}

	local := now.In(loc)
	y, m, d := local.Date()
	openAt := ex.Open.On(y, m, d, loc)
	closeAt := ex.Close.On(y, m, d, loc)
	weekend := isWeekend(local.Weekday())

	if !weekend && !now.Before(openAt) && now.Before(closeAt) {
		return Session{Open: true, Next: closeAt}
	}

	switch {
	case weekend:
		ahead := 2
		if local.Weekday() == time.Sunday {
			ahead = 1
		}
		return Session{Next: openOn(ex, loc, y, m, d+ahead)}
	case now.Before(openAt):
		return Session{Next: openAt}
	default:
		day := d + 1
		for isWeekend(time.Date(y, m, day, 12, 0, 0, 0, loc).Weekday()) {
			day++
		}
		return Session{Next: openOn(ex, loc, y, m, day)}
	}
}

// openOn normalizes the calendar date first so month rollover is handled by time.Date
// and the wall clock is rebuilt in loc.
func openOn(ex models.Exchange, loc *time.Location, y int, m time.Month, d int) time.Time {
	date := time.Date(y, m, d, 12, 0, 0, 0, loc)
	return ex.Open.On(date.Year(), date.Month(), date.Day(), loc)
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}
