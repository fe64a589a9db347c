package api

import (
	"errors"
	"net/http"
	"time"

	"TradingHours/internal/domain/models"
	domrepo "TradingHours/internal/domain/repository"
	"TradingHours/internal/service/markethours"
	"TradingHours/internal/usecase"
	xhttp "TradingHours/pkg/http"
	xlogger "TradingHours/pkg/logger"
	"TradingHours/pkg/util"

	"github.com/labstack/echo/v4"
)

// MarketsEchoHandler serves market status and rendered reports over HTTP.
type MarketsEchoHandler struct {
	logger   *xlogger.Logger
	registry domrepo.ExchangeRegistry
	builder  *usecase.ReportBuilder
	metrics  domrepo.Metrics
	now      func() time.Time

	defaultTimezone  string
	defaultExchanges []string
}

func NewMarketsEchoHandler(
	logger *xlogger.Logger,
	registry domrepo.ExchangeRegistry,
	builder *usecase.ReportBuilder,
	metrics domrepo.Metrics,
) *MarketsEchoHandler {
	return &MarketsEchoHandler{
		logger:   logger,
		registry: registry,
		builder:  builder,
		metrics:  metrics,
		now:      time.Now,

		defaultTimezone: "UTC",
	}
}

// WithDefaults sets the viewer timezone and exchange list used when a request
// omits tz or exchanges. Without exchanges every registered code is reported.
func (h *MarketsEchoHandler) WithDefaults(timezone string, exchanges []string) *MarketsEchoHandler {
	if timezone != "" {
		h.defaultTimezone = timezone
	}
	h.defaultExchanges = append([]string(nil), exchanges...)
	return h
}

// WithClock sets the instant used when a request carries no "at" parameter.
func (h *MarketsEchoHandler) WithClock(now func() time.Time) *MarketsEchoHandler {
	h.now = now
	return h
}

func (h *MarketsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/exchanges", h.Exchanges)
	g.GET("/markets/status", h.Status)
	g.GET("/markets/report", h.Report)
}

type exchangeView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}

type statusView struct {
	models.MarketStatus
	TimeUntil string `json:"time_until,omitempty"`
}

type statusResponse struct {
	Timezone    string       `json:"timezone"`
	GeneratedAt time.Time    `json:"generated_at"`
	OpenCount   int          `json:"open_count"`
	TotalCount  int          `json:"total_count"`
	Markets     []statusView `json:"markets"`
}

func (h *MarketsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *MarketsEchoHandler) Exchanges(c echo.Context) error {
	codes := h.registry.Codes()
	out := make([]exchangeView, 0, len(codes))
	for _, code := range codes {
		ex, ok := h.registry.Lookup(code)
		if !ok {
			continue
		}
		out = append(out, exchangeView{
			Code:     ex.Code,
			Name:     ex.Name,
			Timezone: ex.Timezone,
			Open:     ex.Open.String(),
			Close:    ex.Close.String(),
		})
	}
	return xhttp.SuccessResponse(c, out)
}

func (h *MarketsEchoHandler) Status(c echo.Context) error {
	req := &models.StatusRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	now, aerr := h.instant(req.At)
	if aerr != nil {
		return xhttp.AppErrorResponse(c, aerr)
	}

	codes, tz := h.scope(req.Exchanges, req.Timezone)
	rep, err := h.builder.Statuses(codes, tz, now)
	if err != nil {
		return h.fail(c, "status", err)
	}
	h.observe(rep)

	resp := statusResponse{
		Timezone:    rep.Timezone,
		GeneratedAt: rep.GeneratedAt,
		OpenCount:   rep.OpenCount,
		TotalCount:  rep.TotalCount,
		Markets:     make([]statusView, 0, len(rep.Statuses)),
	}
	for _, st := range rep.Statuses {
		v := statusView{MarketStatus: st}
		if !st.Unknown {
			v.TimeUntil = markethours.FormatDuration(st.Remaining())
		}
		resp.Markets = append(resp.Markets, v)
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *MarketsEchoHandler) Report(c echo.Context) error {
	req := &models.ReportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	now, aerr := h.instant(req.At)
	if aerr != nil {
		return xhttp.AppErrorResponse(c, aerr)
	}

	codes, tz := h.scope(req.Exchanges, req.Timezone)
	rep, err := h.builder.Build(codes, tz, now, req.Name)
	if err != nil {
		return h.fail(c, "report", err)
	}
	h.observe(rep)

	if req.Format == "text" {
		return c.String(http.StatusOK, rep.Text)
	}
	return c.HTML(http.StatusOK, rep.HTML)
}

func (h *MarketsEchoHandler) scope(exchanges, timezone string) ([]string, string) {
	codes := util.SplitList(exchanges)
	if len(codes) == 0 {
		codes = h.defaultExchanges
	}
	if len(codes) == 0 {
		codes = h.registry.Codes()
	}
	if timezone == "" {
		timezone = h.defaultTimezone
	}
	return codes, timezone
}

func (h *MarketsEchoHandler) instant(at string) (time.Time, *xhttp.AppError) {
	if at == "" {
		return h.now(), nil
	}
	t, ok := util.ParseTime(at)
	if !ok {
		return time.Time{}, xhttp.NewAppError("ERR_INVALID_TIME", "at",
			"at must be RFC3339 or unix seconds", http.StatusBadRequest).WithParam("value", at)
	}
	return t, nil
}

func (h *MarketsEchoHandler) observe(rep *models.Report) {
	for _, st := range rep.Statuses {
		if !st.Unknown {
			h.metrics.RecordMarketState(st.Exchange, st.IsOpen())
		}
	}
}

func (h *MarketsEchoHandler) fail(c echo.Context, op string, err error) error {
	if errors.Is(err, markethours.ErrInvalidTimezone) {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError("ERR_TIMEZONE", "tz", err.Error(), http.StatusBadRequest))
	}
	h.metrics.RecordError(op)
	h.logger.Error(op+" usecase error", xlogger.Error(err))
	return xhttp.AppErrorResponse(c, xhttp.InternalError(op+" failed").WithError(err))
}
