package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSV-ReservationService/pkg/metrics"
)

// Metrics records a counter and a latency histogram per route template
type Metrics struct {
	metrics *metrics.Metrics
	service string
}

// NewMetrics creates the metrics middleware
func NewMetrics(m *metrics.Metrics, service string) *Metrics {
	return &Metrics{
		metrics: m,
		service: service,
	}
}

// Middleware observes every request. The mux route template is used as the
// path label so ids do not explode the cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		m.metrics.ObserveHTTPRequest(
			m.service,
			r.Method,
			path,
			strconv.Itoa(recorder.status),
			time.Since(start).Seconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
