package markethours

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders d as H:MM:SS. Hours are not padded or clamped to 24;
// sub-second remainders are dropped.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

// HoursUntil converts d to hours rounded half-up to one decimal place.
func HoursUntil(d time.Duration) float64 {
	ms := float64(d.Milliseconds())
	return math.Floor(ms/360_000+0.5) / 10
}
