// Package middleware provides Echo middleware for the dealdrop API.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dealdrop/dealdrop/internal/metrics"
)

// Metrics returns middleware that records per-route request metrics.
// Operational endpoints stay out of the request histogram and counter:
// the Prometheus scrape path would only measure itself, and the probe
// endpoints instead drive the healthz/readyz up gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			switch path {
			case "/metrics":
				return next(c)
			case "/healthz":
				err := next(c)
				setProbeGauge(metrics.HealthzUp, c.Response().Status)
				return err
			case "/readyz":
				err := next(c)
				setProbeGauge(metrics.ReadyzUp, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// setProbeGauge reflects a probe response as 1 (2xx) or 0 (anything else).
func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
