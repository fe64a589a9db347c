package usecase

import (
	"testing"
	"time"

	"TradingHours/internal/domain/models"
	"TradingHours/internal/repository"
	"TradingHours/internal/service/markethours"
	"TradingHours/internal/service/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *ReportBuilder {
	t.Helper()
	reg, err := repository.NewExchangeRegistry(repository.DefaultExchanges())
	require.NoError(t, err)
	return NewReportBuilder(markethours.NewResolver(reg), render.New())
}

func TestReportBuilder_MixedCodes(t *testing.T) {
	b := newBuilder(t)
	now := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	rep, err := b.Build([]string{"NYSE", "ZZZZ", "JPX"}, "Europe/London", now, "Ana")
	require.NoError(t, err)

	require.Len(t, rep.Statuses, 3)
	assert.Equal(t, []string{"NYSE", "ZZZZ", "JPX"}, []string{rep.Statuses[0].Exchange, rep.Statuses[1].Exchange, rep.Statuses[2].Exchange})
	assert.Equal(t, models.MarketOpen, rep.Statuses[0].State)
	assert.True(t, rep.Statuses[1].Unknown)
	assert.Equal(t, models.MarketClosed, rep.Statuses[2].State)
	assert.Equal(t, 1, rep.OpenCount)
	assert.Equal(t, 3, rep.TotalCount)
	assert.Equal(t, "Europe/London", rep.GeneratedAt.Location().String())
	assert.Equal(t, 15, rep.GeneratedAt.Hour())
	assert.Equal(t, "Ana", rep.ViewerName)

	assert.Contains(t, rep.Text, "1 of 3 markets open")
	assert.Contains(t, rep.Text, "Closes at: 2024-06-10 21:00 BST")
	assert.Contains(t, rep.HTML, "Good afternoon, Ana")
}

func TestReportBuilder_InvalidTimezone(t *testing.T) {
	b := newBuilder(t)

	_, err := b.Build([]string{"NYSE"}, "Nowhere/Special", time.Now(), "")
	require.ErrorIs(t, err, markethours.ErrInvalidTimezone)
}

func TestReportBuilder_StatusesSkipsRendering(t *testing.T) {
	b := newBuilder(t)

	rep, err := b.Statuses([]string{"LSE", "XETRA"}, "UTC", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.OpenCount)
	assert.Empty(t, rep.Text)
	assert.Empty(t, rep.HTML)
}

func TestReportBuilder_Pure(t *testing.T) {
	b := newBuilder(t)
	now := time.Date(2024, 6, 8, 14, 0, 0, 0, time.UTC)
	codes := []string{"NYSE", "NASDAQ", "LSE", "JPX"}

	a, err := b.Build(codes, "UTC", now, "")
	require.NoError(t, err)
	c, err := b.Build(codes, "UTC", now, "")
	require.NoError(t, err)
	assert.Equal(t, a.Text, c.Text)
	assert.Equal(t, a.HTML, c.HTML)
	assert.Equal(t, 0, a.OpenCount)
}

func TestReportBuilder_CodesFollowRegistry(t *testing.T) {
	b := newBuilder(t)
	assert.Equal(t, []string{"NYSE", "NASDAQ", "LSE", "JPX", "XETRA", "HKEX", "ASX", "TSX"}, b.Codes())

	reg, err := repository.NewExchangeRegistry([]models.Exchange{
		{Code: "B3", Name: "B3", Timezone: "America/Sao_Paulo", Open: models.TimeOfDay{Hour: 10}, Close: models.TimeOfDay{Hour: 17}},
	})
	require.NoError(t, err)
	custom := NewReportBuilder(markethours.NewResolver(reg), render.New())
	assert.Equal(t, []string{"B3"}, custom.Codes())

	codes := custom.Codes()
	codes[0] = "XXX"
	assert.Equal(t, []string{"B3"}, custom.Codes())
}
