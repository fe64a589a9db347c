package render

import (
	"fmt"
	"strings"

	"TradingHours/internal/domain/models"
)

// Text renders the plain-text report.
func (r *Renderer) Text(report *models.Report) string {
	v := newView(report)

	var b strings.Builder
	b.WriteString("🕐 Market Hours Check\n")
	fmt.Fprintf(&b, "📍 Timezone: %s\n", v.Timezone)
	fmt.Fprintf(&b, "⏰ Current time: %s\n", v.CurrentTime)
	fmt.Fprintf(&b, "📊 %d of %d markets open\n\n", v.OpenCount, v.TotalCount)

	for _, m := range v.Markets {
		writeMarket(&b, m)
		b.WriteString("\n")
	}
	return b.String()
}

func writeMarket(b *strings.Builder, m marketView) {
	switch {
	case m.Unknown:
		fmt.Fprintf(b, "⚪ %s (%s): %s\n", m.Code, m.Name, m.State)
		fmt.Fprintf(b, "   %s\n", m.Remaining)
	case m.Open:
		fmt.Fprintf(b, "🟢 %s (%s): %s\n", m.Code, m.Name, m.State)
		fmt.Fprintf(b, "   Closes at: %s\n", m.At)
		fmt.Fprintf(b, "   Time until close: %s (%sh)\n", m.Remaining, m.Hours)
	default:
		fmt.Fprintf(b, "🔴 %s (%s): %s\n", m.Code, m.Name, m.State)
		fmt.Fprintf(b, "   Next open: %s\n", m.At)
		fmt.Fprintf(b, "   Time until open: %s (%sh)\n", m.Remaining, m.Hours)
	}
}
