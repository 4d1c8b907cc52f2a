// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"lyftr-server/commons"
	"lyftr-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handlers.Handler) {
	commons.Logger.Debug("Registering routes")
	e.GET("/", h.RootHandler)
	e.POST("/webhook", h.WebhookHandler)
	e.GET("/messages", h.GetMessagesHandler)
	e.GET("/stats", h.GetStatsHandler)
	e.GET("/health/live", h.LivenessHandler)
	e.GET("/health/ready", h.ReadinessHandler)
	e.GET("/metrics", h.MetricsHandler)
	commons.Logger.Info("Routes registered successfully")
}
