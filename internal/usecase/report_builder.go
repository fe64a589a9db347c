package usecase

import (
	"fmt"
	"time"

	"TradingHours/internal/domain/models"
	"TradingHours/internal/service/markethours"
)

// ReportRenderer produces the two report bodies from the same Report.
type ReportRenderer interface {
	Text(report *models.Report) string
	HTML(report *models.Report) (string, error)
}

// ReportBuilder runs the resolver over a list of codes and renders the result.
// It performs no I/O.
type ReportBuilder struct {
	resolver *markethours.Resolver
	renderer ReportRenderer
}

func NewReportBuilder(resolver *markethours.Resolver, renderer ReportRenderer) *ReportBuilder {
	return &ReportBuilder{resolver: resolver, renderer: renderer}
}

// Codes lists every exchange the builder can resolve.
func (b *ReportBuilder) Codes() []string {
	return b.resolver.Codes()
}

// Statuses resolves codes in order. Only an invalid viewer timezone is an error.
func (b *ReportBuilder) Statuses(codes []string, viewerTimezone string, now time.Time) (*models.Report, error) {
	viewer, err := markethours.LoadTimezone(viewerTimezone)
	if err != nil {
		return nil, fmt.Errorf("viewer timezone: %w", err)
	}

	rep := &models.Report{
		Timezone:    viewerTimezone,
		GeneratedAt: now.In(viewer),
		Statuses:    make([]models.MarketStatus, 0, len(codes)),
		TotalCount:  len(codes),
	}
	for _, code := range codes {
		st := b.resolver.Resolve(code, viewer, now)
		if st.IsOpen() {
			rep.OpenCount++
		}
		rep.Statuses = append(rep.Statuses, st)
	}
	return rep, nil
}

// Build resolves codes and fills in the text and HTML renderings.
func (b *ReportBuilder) Build(codes []string, viewerTimezone string, now time.Time, viewerName string) (*models.Report, error) {
	rep, err := b.Statuses(codes, viewerTimezone, now)
	if err != nil {
		return nil, err
	}
	rep.ViewerName = viewerName

	rep.Text = b.renderer.Text(rep)
	html, err := b.renderer.HTML(rep)
	if err != nil {
		return nil, err
	}
	rep.HTML = html
	return rep, nil
}
