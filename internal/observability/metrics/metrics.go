package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                      sync.Once
	metricsRouter             *chi.Mux
	ledgerOpDurationHistogram *prometheus.HistogramVec
	queueSendErrorCounter     prometheus.Counter
	dbLatency                 *prometheus.HistogramVec
	totalStakeGauge           prometheus.Gauge
	registrySizeGauge         prometheus.Gauge
	sweepProcessedGauge       prometheus.Gauge
	sweepDurationHistogram    *prometheus.HistogramVec
	currentTickGauge          prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5}

	ledgerOpDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_op_duration_seconds",
			Help:    "Histogram of ledger operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"op", "status"},
	)

	// counter for failures pushing events into the queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "Histogram of db operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	totalStakeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_stake",
			Help: "Current total staked amount across all stakers",
		},
	)

	registrySizeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_registry_size",
			Help: "Number of addresses that have ever staked",
		},
	)

	sweepProcessedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_sweep_processed_count",
			Help: "Number of stakers reconciled by the last batch distribution",
		},
	)

	sweepDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_sweep_duration_seconds",
			Help:    "Histogram of batch distribution durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	currentTickGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_current_tick",
			Help: "Logical tick observed by the most recent operation",
		},
	)

	prometheus.MustRegister(
		ledgerOpDurationHistogram,
		queueSendErrorCounter,
		dbLatency,
		totalStakeGauge,
		registrySizeGauge,
		sweepProcessedGauge,
		sweepDurationHistogram,
		currentTickGauge,
	)
}

// ObserveLedgerOpDuration records the duration of one public ledger
// operation with its outcome.
func ObserveLedgerOpDuration(op string, outcome Outcome, duration time.Duration) {
	if ledgerOpDurationHistogram == nil {
		return
	}
	ledgerOpDurationHistogram.WithLabelValues(op, outcome.String()).Observe(duration.Seconds())
}

func RecordQueueSendError() {
	if queueSendErrorCounter == nil {
		return
	}
	queueSendErrorCounter.Inc()
}

// ObserveDbLatency records the latency of one db call.
func ObserveDbLatency(method string, outcome Outcome, duration time.Duration) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcome.String()).Observe(duration.Seconds())
}

// RecordLedgerTotals updates the global stake and registry gauges.
func RecordLedgerTotals(totalStake uint64, registrySize int) {
	if totalStakeGauge == nil {
		return
	}
	totalStakeGauge.Set(float64(totalStake))
	registrySizeGauge.Set(float64(registrySize))
}

// RecordSweep updates the batch distribution metrics.
func RecordSweep(processed int, outcome Outcome, duration time.Duration) {
	if sweepProcessedGauge == nil {
		return
	}
	sweepProcessedGauge.Set(float64(processed))
	sweepDurationHistogram.WithLabelValues(outcome.String()).Observe(duration.Seconds())
}

// RecordCurrentTick updates the observed logical tick gauge.
func RecordCurrentTick(tick uint64) {
	if currentTickGauge == nil {
		return
	}
	currentTickGauge.Set(float64(tick))
}
