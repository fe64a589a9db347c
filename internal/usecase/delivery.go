package usecase

import (
	"context"
	"time"

	"TradingHours/internal/domain/models"
	drepo "TradingHours/internal/domain/repository"
	"TradingHours/internal/service/markethours"
	applogger "TradingHours/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// ShouldSendNow reports whether a subscriber in subscriberTimezone is due at now:
// always when force is set, otherwise only when the local hour equals targetHour.
func ShouldSendNow(subscriberTimezone string, targetHour int, now time.Time, force bool) (bool, error) {
	if force {
		return true, nil
	}
	loc, err := markethours.LoadTimezone(subscriberTimezone)
	if err != nil {
		return false, err
	}
	return now.In(loc).Hour() == targetHour, nil
}

// Subject is the email subject for a report generated at the subscriber-local time at.
func Subject(at time.Time) string {
	return "🕐 Market Hours - " + at.Format("Monday, Jan 2")
}

type DeliveryOptions struct {
	From     string
	SendHour int
	Force    bool
	// Workers > 1 sends concurrently; results are still reported in roster order.
	Workers int
}

type DeliverySummary struct {
	Total   int
	Sent    int
	Skipped int
	Failed  int
}

// Outcome is the result for one subscriber.
type Outcome struct {
	Subscriber models.Subscriber
	Status     string
	ID         string
	Err        error
}

// Delivery sends each due subscriber a report for their exchanges and timezone.
type Delivery struct {
	roster  drepo.RosterSource
	mailer  drepo.Mailer
	builder *ReportBuilder
	metrics drepo.Metrics
	logger  *applogger.Logger
	opts    DeliveryOptions
	now     func() time.Time
	observe func(Outcome)
}

func NewDelivery(
	roster drepo.RosterSource,
	mailer drepo.Mailer,
	builder *ReportBuilder,
	metrics drepo.Metrics,
	logger *applogger.Logger,
	opts DeliveryOptions,
) *Delivery {
	return &Delivery{
		roster:  roster,
		mailer:  mailer,
		builder: builder,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used to pick the run's single "now".
func (d *Delivery) WithClock(now func() time.Time) *Delivery {
	d.now = now
	return d
}

// WithObserver registers fn to be called with every outcome, in roster order.
func (d *Delivery) WithObserver(fn func(Outcome)) *Delivery {
	d.observe = fn
	return d
}

// Run loads the roster and processes every subscriber. Only a roster failure is
// returned as an error; per-subscriber failures are logged and counted.
func (d *Delivery) Run(ctx context.Context) (DeliverySummary, error) {
	subs, err := d.roster.Load(ctx)
	if err != nil {
		d.metrics.RecordError("roster")
		return DeliverySummary{}, err
	}

	sum := DeliverySummary{Total: len(subs)}
	if len(subs) == 0 {
		d.logger.Warn("no subscribers configured")
		return sum, nil
	}

	now := d.now()
	d.logger.Info("delivery started",
		applogger.Int("subscribers", len(subs)),
		applogger.Int("send_hour", d.opts.SendHour),
		applogger.Bool("force", d.opts.Force),
	)

	results := make([]Outcome, len(subs))
	if d.opts.Workers <= 1 {
		for i, s := range subs {
			results[i] = d.deliver(ctx, s, now)
			d.report(results[i])
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.opts.Workers)
		for i, s := range subs {
			g.Go(func() error {
				results[i] = d.deliver(ctx, s, now)
				return nil
			})
		}
		_ = g.Wait()
		for _, r := range results {
			d.report(r)
		}
	}

	for _, r := range results {
		switch r.Status {
		case StatusSent:
			sum.Sent++
		case StatusSkipped:
			sum.Skipped++
		default:
			sum.Failed++
		}
		d.metrics.RecordEmail(r.Status)
	}

	d.logger.Info("delivery finished",
		applogger.Int("sent", sum.Sent),
		applogger.Int("skipped", sum.Skipped),
		applogger.Int("failed", sum.Failed),
	)
	return sum, nil
}

func (d *Delivery) deliver(ctx context.Context, s models.Subscriber, now time.Time) Outcome {
	due, err := ShouldSendNow(s.Timezone, d.opts.SendHour, now, d.opts.Force)
	if err != nil {
		return Outcome{Subscriber: s, Status: StatusFailed, Err: err}
	}
	if !due {
		return Outcome{Subscriber: s, Status: StatusSkipped}
	}

	rep, err := d.builder.Build(s.Exchanges, s.Timezone, now, s.Name)
	if err != nil {
		return Outcome{Subscriber: s, Status: StatusFailed, Err: err}
	}

	start := time.Now()
	id, err := d.mailer.Send(ctx, &models.Email{
		From:    d.opts.From,
		To:      s.Email,
		Subject: Subject(rep.GeneratedAt),
		Text:    rep.Text,
		HTML:    rep.HTML,
	})
	d.metrics.RecordLatency("email_send", time.Since(start).Seconds())
	if err != nil {
		d.metrics.RecordError("email_send")
		return Outcome{Subscriber: s, Status: StatusFailed, Err: err}
	}
	return Outcome{Subscriber: s, Status: StatusSent, ID: id}
}

func (d *Delivery) report(o Outcome) {
	s := o.Subscriber
	fields := []applogger.Field{
		applogger.String("name", s.Name),
		applogger.String("email", s.Email),
		applogger.String("timezone", s.Timezone),
	}
	switch o.Status {
	case StatusSent:
		d.logger.Info("email sent", append(fields, applogger.String("id", o.ID))...)
	case StatusSkipped:
		d.logger.Info("skipped, not send hour", append(fields, applogger.Int("send_hour", d.opts.SendHour))...)
	default:
		d.logger.Error("email failed", append(fields, applogger.Error(o.Err))...)
	}
	if d.observe != nil {
		d.observe(o)
	}
}
