// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"strconv"
	"time"

	"lyftr-server/metrics"

	"github.com/labstack/echo/v4"
)

// RecordMetricsMiddleware counts every finished request and observes
// its latency. The path label is the registered route, not the raw
// URL, to keep series cardinality bounded.
func RecordMetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)
			durationMs := float64(time.Since(start).Microseconds()) / 1000.0
			m.RecordHTTPRequest(path, status, durationMs)

			return err
		}
	}
}
