package assistant

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ChatMetricsRecorder defines the interface for recording chat-completion
// metrics. Abstracting the recorder keeps the providers testable without a
// Prometheus registry and reusable across providers (Claude, OpenAI).
type ChatMetricsRecorder interface {
	// RecordRequest increments the per-provider request counter.
	RecordRequest(provider string)

	// RecordFailure increments the per-provider failure counter.
	RecordFailure(provider string)

	// RecordReplyLength records the length of a generated reply in characters.
	RecordReplyLength(length int)

	// RecordDuration records the time taken for a completion call.
	RecordDuration(provider string, duration time.Duration)
}

// PrometheusChatMetrics implements ChatMetricsRecorder using Prometheus.
type PrometheusChatMetrics struct {
	requestsCounter   *prometheus.CounterVec
	failuresCounter   *prometheus.CounterVec
	lengthHistogram   prometheus.Histogram
	durationHistogram *prometheus.HistogramVec
}

var (
	chatMetricsInstance *PrometheusChatMetrics
	chatMetricsOnce     sync.Once
)

// NewPrometheusChatMetrics creates a Prometheus-based metrics recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusChatMetrics() *PrometheusChatMetrics {
	chatMetricsOnce.Do(func() {
		chatMetricsInstance = &PrometheusChatMetrics{
			requestsCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "assistant_chat_requests_total",
				Help: "Total number of chat-completion requests by provider",
			}, []string{"provider"}),
			failuresCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "assistant_chat_failures_total",
				Help: "Total number of failed chat-completion requests by provider",
			}, []string{"provider"}),
			lengthHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "assistant_chat_reply_length_characters",
				Help:    "Distribution of reply lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 300, 500, 1000, 2000, 4000},
			}),
			durationHistogram: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "assistant_chat_duration_seconds",
				Help:    "Time taken for a chat-completion call by provider",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider"}),
		}
	})
	return chatMetricsInstance
}

// RecordRequest implements ChatMetricsRecorder.RecordRequest.
func (p *PrometheusChatMetrics) RecordRequest(provider string) {
	p.requestsCounter.WithLabelValues(provider).Inc()
}

// RecordFailure implements ChatMetricsRecorder.RecordFailure.
func (p *PrometheusChatMetrics) RecordFailure(provider string) {
	p.failuresCounter.WithLabelValues(provider).Inc()
}

// RecordReplyLength implements ChatMetricsRecorder.RecordReplyLength.
func (p *PrometheusChatMetrics) RecordReplyLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordDuration implements ChatMetricsRecorder.RecordDuration.
func (p *PrometheusChatMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}
