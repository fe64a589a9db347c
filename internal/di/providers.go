package di

import (
	"fmt"
	"strconv"
	"strings"

	"TradingHours/internal/domain/models"
	"TradingHours/internal/domain/repository"
	"TradingHours/internal/handler/api"
	internalrepo "TradingHours/internal/repository"
	"TradingHours/internal/service/markethours"
	"TradingHours/internal/service/render"
	"TradingHours/internal/service/resend"
	"TradingHours/internal/usecase"
	"TradingHours/pkg/config"
	applogger "TradingHours/pkg/logger"
	"TradingHours/pkg/metrics"
	"TradingHours/pkg/server"
)

// ProvideLogger builds the zerolog-backed logger from the logging section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideExchangeDefs returns the configured exchange table, or the built-in one.
func ProvideExchangeDefs(cfg *config.Config) ([]models.Exchange, error) {
	if len(cfg.Exchanges) == 0 {
		return internalrepo.DefaultExchanges(), nil
	}
	defs := make([]models.Exchange, 0, len(cfg.Exchanges))
	for _, ec := range cfg.Exchanges {
		open, err := parseClock(ec.Open)
		if err != nil {
			return nil, fmt.Errorf("exchange %s: open: %w", ec.Code, err)
		}
		closeAt, err := parseClock(ec.Close)
		if err != nil {
			return nil, fmt.Errorf("exchange %s: close: %w", ec.Code, err)
		}
		defs = append(defs, models.Exchange{
			Code:     ec.Code,
			Name:     ec.Name,
			Timezone: ec.Timezone,
			Open:     open,
			Close:    closeAt,
		})
	}
	return defs, nil
}

// parseClock reads "HH:MM".
func parseClock(s string) (models.TimeOfDay, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return models.TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return models.TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return models.TimeOfDay{}, fmt.Errorf("invalid time %q", s)
	}
	return models.TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ProvideExchangeRegistry validates the table and loads every exchange timezone.
func ProvideExchangeRegistry(defs []models.Exchange) (*internalrepo.ExchangeRegistry, error) {
	reg, err := internalrepo.NewExchangeRegistry(defs)
	if err != nil {
		return nil, fmt.Errorf("exchange registry: %w", err)
	}
	return reg, nil
}

func ProvideResolver(reg repository.ExchangeRegistry) *markethours.Resolver {
	return markethours.NewResolver(reg)
}

func ProvideRenderer() *render.Renderer {
	return render.New()
}

func ProvideReportBuilder(resolver *markethours.Resolver, renderer usecase.ReportRenderer) *usecase.ReportBuilder {
	return usecase.NewReportBuilder(resolver, renderer)
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(nil)
}

// ProvideRoster reads subscribers from the configured JSON file.
func ProvideRoster(cfg *config.Config) repository.RosterSource {
	return internalrepo.NewFileRoster(cfg.Delivery.RosterPath)
}

// ProvideMailer creates the Resend client. A missing key is reported as
// config.ErrMissingAPIKey before anything else is touched.
func ProvideMailer(cfg *config.Config) (repository.Mailer, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	c, err := resend.NewClient(cfg.Resend.APIKey,
		resend.WithBaseURL(cfg.Resend.BaseURL),
		resend.WithTimeout(cfg.Resend.Timeout),
		resend.WithRateLimit(cfg.Resend.RatePerSecond),
	)
	if err != nil {
		return nil, fmt.Errorf("resend client: %w", err)
	}
	return c, nil
}

// ProvideDelivery creates the delivery use case.
func ProvideDelivery(
	cfg *config.Config,
	roster repository.RosterSource,
	mailer repository.Mailer,
	builder *usecase.ReportBuilder,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.Delivery {
	return usecase.NewDelivery(roster, mailer, builder, m, log, usecase.DeliveryOptions{
		From:     cfg.Resend.From,
		SendHour: cfg.Delivery.SendHour,
		Force:    cfg.Delivery.Force,
		Workers:  cfg.Delivery.Workers,
	})
}

func ProvideMarketsHandler(
	cfg *config.Config,
	log *applogger.Logger,
	reg repository.ExchangeRegistry,
	builder *usecase.ReportBuilder,
	m repository.Metrics,
) *api.MarketsEchoHandler {
	return api.NewMarketsEchoHandler(log, reg, builder, m).
		WithDefaults(cfg.Report.Timezone, cfg.Report.Exchanges)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, h *api.MarketsEchoHandler) *server.App {
	return server.New(cfg, log, h)
}
