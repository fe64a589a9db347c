package models

import "time"

type MarketState string

const (
	MarketOpen   MarketState = "open"
	MarketClosed MarketState = "closed"
)

// UnknownExchangeName is the display name used for codes missing from the registry.
const UnknownExchangeName = "Unknown"

// MarketStatus is the state of one exchange at a single instant.
// Exactly one of the open (ClosesAt, TimeUntilClose) or closed (OpensAt, TimeUntilOpen)
// groups is set. Unknown exchanges set neither.
type MarketStatus struct {
	Exchange string      `json:"exchange"`
	Name     string      `json:"name"`
	State    MarketState `json:"status"`
	Unknown  bool        `json:"unknown,omitempty"`

	ClosesAt       *time.Time    `json:"closes_at,omitempty"`
	TimeUntilClose time.Duration `json:"-"`

	OpensAt       *time.Time    `json:"next_open,omitempty"`
	TimeUntilOpen time.Duration `json:"-"`

	HoursUntil float64 `json:"hours_until"`
}

func (s MarketStatus) IsOpen() bool { return s.State == MarketOpen }

// Transition returns the next open or close instant, in the viewer's zone.
func (s MarketStatus) Transition() (time.Time, bool) {
	switch {
	case s.ClosesAt != nil:
		return *s.ClosesAt, true
	case s.OpensAt != nil:
		return *s.OpensAt, true
	}
	return time.Time{}, false
}

// Remaining returns the duration until Transition.
func (s MarketStatus) Remaining() time.Duration {
	if s.IsOpen() {
		return s.TimeUntilClose
	}
	return s.TimeUntilOpen
}
