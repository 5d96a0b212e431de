package metrics

import (
	"fmt"
	"net/http"
	"strconv"
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
	once                         sync.Once
	metricsRouter                *chi.Mux
	bankClientLatency            *prometheus.HistogramVec
	chainClientLatency           *prometheus.HistogramVec
	queueSendErrorCounter        prometheus.Counter
	httpRequestDurationHistogram *prometheus.HistogramVec
	governanceOperationCounter   *prometheus.CounterVec
	proposalsExecutedCounter     prometheus.Counter
	totalStakedGauge             prometheus.Gauge
	chainTipHeightGauge          prometheus.Gauge
	dbLatency                    *prometheus.HistogramVec
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
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming HTTP request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	bankClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_client_latency_seconds",
			Help:    "Histogram of bank client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	chainClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chain_client_latency_seconds",
			Help:    "Histogram of chain client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	governanceOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "governance_operation_count",
			Help: "The total number of governance operations split by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	proposalsExecutedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_executed_count",
			Help: "The total number of proposals that reached the terminal executed state",
		},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_staked",
			Help: "Last observed value of the global total staked counter",
		},
	)

	chainTipHeightGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chain_tip_height",
			Help: "Last value of chain height retrieved",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		bankClientLatency,
		chainClientLatency,
		queueSendErrorCounter,
		governanceOperationCounter,
		proposalsExecutedCounter,
		totalStakedGauge,
		chainTipHeightGauge,
		dbLatency,
	)
}

func RecordHttpRequestDuration(d time.Duration, method, path string, statusCode int) {
	httpRequestDurationHistogram.
		WithLabelValues(method, path, strconv.Itoa(statusCode)).
		Observe(d.Seconds())
}

func RecordBankClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	bankClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordChainClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	chainClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordGovernanceOperation(operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	governanceOperationCounter.WithLabelValues(operation, status.String()).Inc()
}

func RecordProposalExecuted() {
	proposalsExecutedCounter.Inc()
}

func RecordTotalStaked(totalStaked uint64) {
	totalStakedGauge.Set(float64(totalStaked))
}

func RecordChainTipHeight(height uint64) {
	chainTipHeightGauge.Set(float64(height))
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
