// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LivenessHandler godoc
// @Summary      Liveness probe
// @Description  Always returns 200 while the process is up.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Process is running"
// @Router       /health/live [get]
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// ReadinessHandler godoc
// @Summary      Readiness probe
// @Description  Returns 200 only when the webhook secret is configured and the database answers a ping.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Ready to serve traffic"
// @Failure      503 {object} ErrorResponse  "Secret missing or database unreachable"
// @Router       /health/ready [get]
func (h *Handler) ReadinessHandler(c echo.Context) error {
	logger := c.Logger()

	if !h.Config.IsReady() {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "WEBHOOK_SECRET not set"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		logger.Error("Database readiness check failed:", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "Database not ready"})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	})
}

// RootHandler godoc
// @Summary      Service information
// @Tags         info
// @Produce      json
// @Success      200 {object} map[string]any "Service and endpoint overview"
// @Router       / [get]
func (h *Handler) RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "Lyftr Webhook Service",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"webhook":  "POST /webhook",
			"messages": "GET /messages",
			"stats":    "GET /stats",
			"health": map[string]string{
				"liveness":  "GET /health/live",
				"readiness": "GET /health/ready",
			},
			"metrics": "GET /metrics",
		},
	})
}
