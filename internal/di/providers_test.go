package di

import (
	"testing"
	"time"

	"TradingHours/internal/domain/models"
	"TradingHours/pkg/config"
	applogger "TradingHours/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideExchangeDefs_Builtin(t *testing.T) {
	defs, err := ProvideExchangeDefs(&config.Config{})
	require.NoError(t, err)
	assert.Len(t, defs, 8)
}

func TestProvideExchangeDefs_Override(t *testing.T) {
	cfg := &config.Config{Exchanges: []config.ExchangeConfig{
		{Code: "BVMF", Name: "B3", Timezone: "America/Sao_Paulo", Open: "10:00", Close: "17:55"},
	}}
	defs, err := ProvideExchangeDefs(cfg)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, models.TimeOfDay{Hour: 10}, defs[0].Open)
	assert.Equal(t, models.TimeOfDay{Hour: 17, Minute: 55}, defs[0].Close)

	reg, err := ProvideExchangeRegistry(defs)
	require.NoError(t, err)
	ex, ok := reg.Lookup("BVMF")
	require.True(t, ok)
	assert.NotNil(t, ex.Location)
}

func TestProvideExchangeDefs_RejectsInvertedSession(t *testing.T) {
	cfg := &config.Config{Exchanges: []config.ExchangeConfig{
		{Code: "X", Name: "X", Timezone: "UTC", Open: "17:00", Close: "09:00"},
	}}
	defs, err := ProvideExchangeDefs(cfg)
	require.NoError(t, err)
	_, err = ProvideExchangeRegistry(defs)
	assert.Error(t, err)
}

func TestInitializeReportBuilder(t *testing.T) {
	b, err := InitializeReportBuilder(&config.Config{})
	require.NoError(t, err)

	rep, err := b.Build([]string{"NYSE"}, "UTC", time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.OpenCount)
}

func TestInitializeDelivery_MissingKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Delivery.RosterPath = "does-not-exist.json"

	_, err := InitializeDelivery(cfg, applogger.Nop())
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}
