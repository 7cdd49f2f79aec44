package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlannerCollector bundles Prometheus metrics for the frequency planning
// service and provides helpers to wire them into HTTP handlers.
type PlannerCollector struct {
	gatherer prometheus.Gatherer

	PlanRequests  *prometheus.CounterVec
	ChannelShifts *prometheus.CounterVec
	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	BandTableRows prometheus.Gauge
}

// NewPlannerCollector registers the planner metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewPlannerCollector(reg prometheus.Registerer) (*PlannerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freqplan_plan_requests_total",
		Help: "Total number of carrier plan computations, labeled by band and outcome.",
	}, []string{"band", "outcome"})
	plans, err := registerCounterVec(reg, plans, "freqplan_plan_requests_total")
	if err != nil {
		return nil, err
	}

	shifts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freqplan_channel_shifts_total",
		Help: "Channel center adjustments made to align coreset0 with the SSB, labeled by band and direction.",
	}, []string{"band", "direction"})
	shifts, err = registerCounterVec(reg, shifts, "freqplan_channel_shifts_total")
	if err != nil {
		return nil, err
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freqplan_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by endpoint and status code.",
	}, []string{"endpoint", "code"})
	requests, err = registerCounterVec(reg, requests, "freqplan_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "freqplan_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
	}, []string{"endpoint"})
	durations, err = registerHistogramVec(reg, durations, "freqplan_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	bandRows, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "freqplan_band_table_rows",
		Help: "Number of operating band rows loaded in the frequency tables.",
	}), "freqplan_band_table_rows")
	if err != nil {
		return nil, err
	}

	return &PlannerCollector{
		gatherer:      gatherer,
		PlanRequests:  plans,
		ChannelShifts: shifts,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		BandTableRows: bandRows,
	}, nil
}

// RecordPlan counts one plan computation for a band with the given
// outcome ("ok" or an error class).
func (c *PlannerCollector) RecordPlan(band int, outcome string) {
	if c == nil || c.PlanRequests == nil {
		return
	}
	c.PlanRequests.WithLabelValues(strconv.Itoa(band), outcome).Inc()
}

// RecordShift counts one channel center adjustment ("up" or "down").
func (c *PlannerCollector) RecordShift(band int, direction string) {
	if c == nil || c.ChannelShifts == nil {
		return
	}
	c.ChannelShifts.WithLabelValues(strconv.Itoa(band), direction).Inc()
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and durations for an HTTP endpoint.
func (c *PlannerCollector) Middleware(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(endpoint, strconv.Itoa(rec.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PlannerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
