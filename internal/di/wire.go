//go:build wireinject
// +build wireinject

package di

import (
	"TradingHours/internal/domain/repository"
	internalrepo "TradingHours/internal/repository"
	"TradingHours/internal/service/render"
	"TradingHours/internal/usecase"
	"TradingHours/pkg/config"
	applogger "TradingHours/pkg/logger"
	"TradingHours/pkg/server"

	"github.com/google/wire"
)

var reportSet = wire.NewSet(
	ProvideExchangeDefs,
	ProvideExchangeRegistry,
	wire.Bind(new(repository.ExchangeRegistry), new(*internalrepo.ExchangeRegistry)),
	ProvideResolver,
	ProvideRenderer,
	wire.Bind(new(usecase.ReportRenderer), new(*render.Renderer)),
	ProvideReportBuilder,
)

// InitializeReportBuilder wires the registry, resolver and renderers.
func InitializeReportBuilder(cfg *config.Config) (*usecase.ReportBuilder, error) {
	wire.Build(reportSet)
	return nil, nil
}

// InitializeDelivery wires the notifier. The mailer is built first so a missing
// API key fails before the roster is touched.
func InitializeDelivery(cfg *config.Config, log *applogger.Logger) (*usecase.Delivery, error) {
	wire.Build(
		reportSet,
		ProvideMetrics,
		ProvideRoster,
		ProvideMailer,
		ProvideDelivery,
	)
	return nil, nil
}

// InitializeApp wires up all dependencies and returns the application.
func InitializeApp(cfg *config.Config, log *applogger.Logger) (*server.App, error) {
	wire.Build(
		reportSet,
		ProvideMetrics,
		ProvideMarketsHandler,
		ProvideApp,
	)
	return nil, nil
}
