package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RoleFunc reports the role label for a finished request, e.g. "anonymous" or "admin".
type RoleFunc func(c *gin.Context) string

// HTTPOption configures HTTPMetricsMiddleware.
type HTTPOption func(*httpMetrics)

// WithRoleLabel adds a role attribute computed after the handler ran, so it sees
// the principal stored by the session middleware.
func WithRoleLabel(fn RoleFunc) HTTPOption {
	return func(m *httpMetrics) {
		m.role = fn
	}
}

type httpMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	role     RoleFunc
}

// HTTPMetricsMiddleware records request counts and latencies labelled by method, route
// template and status code. Unmatched routes share the "unknown" route label so probes
// against random paths cannot grow the series count.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string, opts ...HTTPOption) gin.HandlerFunc {
	m, err := newHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	for _, opt := range opts {
		opt(m)
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []attribute.KeyValue{
			attribute.String("method", c.Request.Method),
			attribute.String("path", routeLabel(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		}
		if m.role != nil {
			attrs = append(attrs, attribute.String("role", m.role(c)))
		}

		set := metric.WithAttributes(attrs...)
		m.requests.Add(c.Request.Context(), 1, set)
		m.duration.Record(c.Request.Context(), time.Since(start).Seconds(), set)
	}
}

func newHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*httpMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requests, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{requests: requests, duration: duration}, nil
}

func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
