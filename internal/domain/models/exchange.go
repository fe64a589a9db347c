package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock hour and minute in an exchange's own timezone.
type TimeOfDay struct {
	Hour   int `yaml:"hour" json:"hour" validate:"gte=0,lte=23"`
	Minute int `yaml:"minute" json:"minute" validate:"gte=0,lte=59"`
}

// Minutes returns minutes since local midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// On returns the instant of t on the given local calendar date in loc.
func (t TimeOfDay) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour, t.Minute, 0, 0, loc)
}

// Exchange is a trading venue with a single daily session.
type Exchange struct {
	Code     string    `yaml:"code" json:"code" validate:"required"`
	Name     string    `yaml:"name" json:"name" validate:"required"`
	Timezone string    `yaml:"timezone" json:"timezone" validate:"required,timezone"`
	Open     TimeOfDay `yaml:"open" json:"open"`
	Close    TimeOfDay `yaml:"close" json:"close"`

	// Location is filled in by the registry once the timezone has been loaded.
	Location *time.Location `yaml:"-" json:"-"`
}
