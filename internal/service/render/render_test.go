package render

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"TradingHours/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *models.Report {
	t.Helper()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	closes := time.Date(2024, 6, 11, 5, 0, 0, 0, tokyo)
	opens := time.Date(2024, 6, 11, 16, 0, 0, 0, tokyo)
	return &models.Report{
		Timezone:    "Asia/Tokyo",
		GeneratedAt: time.Date(2024, 6, 10, 23, 0, 0, 0, tokyo),
		ViewerName:  "Ana",
		Statuses: []models.MarketStatus{
			{Exchange: "NYSE", Name: "New York Stock Exchange", State: models.MarketOpen, ClosesAt: &closes, TimeUntilClose: 6 * time.Hour, HoursUntil: 6},
			{Exchange: "LSE", Name: "London Stock Exchange", State: models.MarketClosed, OpensAt: &opens, TimeUntilOpen: 17 * time.Hour, HoursUntil: 17},
			{Exchange: "ZZZZ", Name: models.UnknownExchangeName, State: models.MarketClosed, Unknown: true},
		},
		OpenCount:  1,
		TotalCount: 3,
	}
}

func TestText(t *testing.T) {
	out := New().Text(sampleReport(t))

	assert.Contains(t, out, "📍 Timezone: Asia/Tokyo\n")
	assert.Contains(t, out, "⏰ Current time: 2024-06-10 23:00:00 JST\n")
	assert.Contains(t, out, "1 of 3 markets open")
	assert.Contains(t, out, "🟢 NYSE (New York Stock Exchange): OPEN NOW\n   Closes at: 2024-06-11 05:00 JST\n   Time until close: 6:00:00 (6.0h)\n")
	assert.Contains(t, out, "🔴 LSE (London Stock Exchange): CLOSED\n   Next open: 2024-06-11 16:00 JST\n   Time until open: 17:00:00 (17.0h)\n")
	assert.Contains(t, out, "⚪ ZZZZ (Unknown): CLOSED\n   Unknown exchange\n")

	// Input order is preserved.
	assert.Less(t, strings.Index(out, "NYSE"), strings.Index(out, "LSE"))
	assert.Less(t, strings.Index(out, "LSE"), strings.Index(out, "ZZZZ"))
}

func TestHTML(t *testing.T) {
	out, err := New().HTML(sampleReport(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Good evening, Ana")
	assert.Contains(t, out, "Monday, June 10, 2024")
	assert.Contains(t, out, "1 of 3 markets open")
	assert.Contains(t, out, "6:00:00")
	assert.Contains(t, out, "17:00:00")
	assert.Contains(t, out, "Unknown exchange")
	assert.Contains(t, out, "● OPEN")
	assert.Contains(t, out, "Closes in")
	assert.Contains(t, out, "Opens in")
	assert.Contains(t, out, "05:00")
	assert.Equal(t, 3, strings.Count(out, "font-size: 18px; font-weight: 700; margin-bottom: 2px;"))
}

func TestHTMLAndTextAgree(t *testing.T) {
	r := New()
	report := sampleReport(t)
	text := r.Text(report)
	html, err := r.HTML(report)
	require.NoError(t, err)

	for _, m := range newView(report).Markets {
		assert.Contains(t, text, m.Remaining)
		assert.Contains(t, html, m.Remaining)
		if m.At != "" {
			assert.Contains(t, text, m.At)
			assert.Contains(t, html, m.At)
		}
	}
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// visibleText drops markup, attributes included, and collapses whitespace.
func visibleText(html string) string {
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(html, " ")), " ")
}

func TestHTMLShowsTransitionZone(t *testing.T) {
	out, err := New().HTML(sampleReport(t))
	require.NoError(t, err)
	visible := visibleText(out)

	assert.Contains(t, visible, "05:00 JST Tue Jun 11")
	assert.Contains(t, visible, "16:00 JST Tue Jun 11")

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	report := sampleReport(t)
	closes := report.Statuses[0].ClosesAt.In(ny)
	report.Statuses[0].ClosesAt = &closes
	out, err = New().HTML(report)
	require.NoError(t, err)
	assert.Contains(t, visibleText(out), "16:00 EDT Mon Jun 10")
}

func TestHTMLEscapesNames(t *testing.T) {
	report := sampleReport(t)
	report.ViewerName = "<script>alert(1)</script>"
	report.Statuses[0].Name = "Smith & Sons"

	out, err := New().HTML(report)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Smith &amp; Sons")
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 6, 10, h, 0, 0, 0, time.UTC) }
	assert.Equal(t, "Good morning", greeting(at(8), ""))
	assert.Equal(t, "Good afternoon, Bo", greeting(at(12), "Bo"))
	assert.Equal(t, "Good evening", greeting(at(18), ""))
}
