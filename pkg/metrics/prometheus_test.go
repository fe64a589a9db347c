package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordEmail("sent")
	r.RecordEmail("sent")
	r.RecordEmail("failed")
	r.RecordError("email_send")
	r.RecordMarketState("NYSE", true)
	r.RecordMarketState("JPX", false)
	r.RecordLatency("email_send", 0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.emailsTotal.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.emailsTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("email_send")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.marketOpen.WithLabelValues("NYSE")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.marketOpen.WithLabelValues("JPX")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))

	r.RecordMarketState("NYSE", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.marketOpen.WithLabelValues("NYSE")))
}

func TestRecorder_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
