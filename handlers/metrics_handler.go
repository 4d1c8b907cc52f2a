// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MetricsHandler godoc
// @Summary      Prometheus metrics exposition
// @Tags         metrics
// @Produce      plain
// @Success      200 {string} string        "Metrics in Prometheus text format"
// @Failure      404 {object} ErrorResponse "Metrics collection is disabled"
// @Router       /metrics [get]
func (h *Handler) MetricsHandler(c echo.Context) error {
	if !h.Metrics.Enabled() {
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Metrics disabled"})
	}
	h.Metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
