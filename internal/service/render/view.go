package render

import (
	"fmt"
	"time"

	"TradingHours/internal/domain/models"
	"TradingHours/internal/service/markethours"
)

const (
	stampLayout   = "2006-01-02 15:04:05 MST"
	instantLayout = "2006-01-02 15:04 MST"
)

// reportView holds every fact either rendering shows, already formatted,
// so text and HTML cannot disagree.
type reportView struct {
	Greeting    string
	Date        string
	Clock       string
	CurrentTime string
	Timezone    string
	OpenCount   int
	TotalCount  int
	Markets     []marketView
}

type marketView struct {
	Code      string
	Name      string
	Open      bool
	Unknown   bool
	State     string
	Pill      string
	InLabel   string
	AtLabel   string
	Remaining string
	Hours     string
	At        string
	AtClock   string
	AtZone    string
	AtDate    string
}

func newView(r *models.Report) reportView {
	v := reportView{
		Greeting:    greeting(r.GeneratedAt, r.ViewerName),
		Date:        r.GeneratedAt.Format("Monday, January 2, 2006"),
		Clock:       r.GeneratedAt.Format("15:04"),
		CurrentTime: r.GeneratedAt.Format(stampLayout),
		Timezone:    r.Timezone,
		OpenCount:   r.OpenCount,
		TotalCount:  r.TotalCount,
		Markets:     make([]marketView, 0, len(r.Statuses)),
	}
	for _, s := range r.Statuses {
		v.Markets = append(v.Markets, newMarketView(s))
	}
	return v
}

func newMarketView(s models.MarketStatus) marketView {
	mv := marketView{
		Code:    s.Exchange,
		Name:    s.Name,
		Open:    s.IsOpen(),
		Unknown: s.Unknown,
		State:   "CLOSED",
		Pill:    "CLOSED",
		InLabel: "Opens in",
		AtLabel: "Opens at",
	}
	if mv.Open {
		mv.State = "OPEN NOW"
		mv.Pill = "OPEN"
		mv.InLabel = "Closes in"
		mv.AtLabel = "Closes at"
	}
	if s.Unknown {
		mv.Remaining = "Unknown exchange"
		return mv
	}

	mv.Remaining = markethours.FormatDuration(s.Remaining())
	mv.Hours = fmt.Sprintf("%.1f", s.HoursUntil)
	if at, ok := s.Transition(); ok {
		mv.At = at.Format(instantLayout)
		mv.AtClock = at.Format("15:04")
		mv.AtZone = at.Format("MST")
		mv.AtDate = at.Format("Mon Jan 2")
	}
	return mv
}

func greeting(at time.Time, name string) string {
	g := "Good evening"
	switch h := at.Hour(); {
	case h < 12:
		g = "Good morning"
	case h < 18:
		g = "Good afternoon"
	}
	if name != "" {
		g += ", " + name
	}
	return g
}
