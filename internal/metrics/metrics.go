// Package metrics exposes Prometheus collectors for request workflow
// commands and the HTTP surface.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

const namespace = "worktrack"

// Recorder owns the collectors. The zero value is not usable; call New.
type Recorder struct {
	gatherer prometheus.Gatherer

	transitions  *prometheus.CounterVec
	quantity     *prometheus.CounterVec
	failures     *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a Recorder and registers its collectors in reg. If reg is a
// *prometheus.Registry it is also used as the gatherer for Handler;
// otherwise the default gatherer is used.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		gatherer: prometheus.DefaultGatherer,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_transitions_total",
			Help:      "Status transitions applied to requests.",
		}, []string{"kind", "from", "to"}),
		quantity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jig_quantity_units_total",
			Help:      "Jig units received or returned.",
		}, []string{"direction"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_failures_total",
			Help:      "Rejected or failed workflow commands by error class.",
		}, []string{"command", "class"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(r.transitions, r.quantity, r.failures, r.httpRequests, r.httpDuration)
	if g, ok := reg.(prometheus.Gatherer); ok {
		r.gatherer = g
	}
	return r
}

// Transition counts one applied status change.
func (r *Recorder) Transition(kind domain.RequestKind, from, to domain.Status) {
	r.transitions.WithLabelValues(kind.String(), from.String(), to.String()).Inc()
}

// QuantityChanged counts received (delta > 0) or returned (delta < 0) units.
func (r *Recorder) QuantityChanged(delta int) {
	switch {
	case delta > 0:
		r.quantity.WithLabelValues("received").Add(float64(delta))
	case delta < 0:
		r.quantity.WithLabelValues("returned").Add(float64(-delta))
	}
}

// CommandFailed counts a failed command, labelled by the domain error class.
func (r *Recorder) CommandFailed(command string, err error) {
	r.failures.WithLabelValues(command, ErrorClass(err)).Inc()
}

// ObserveHTTP records one served HTTP request.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registered collectors in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

// ErrorClass maps an error to a low-cardinality label value.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrQuantityOutOfRange):
		return "quantity_out_of_range"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already_exists"
	default:
		return "internal"
	}
}
