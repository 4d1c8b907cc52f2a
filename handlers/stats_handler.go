// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetStatsHandler godoc
// @Summary      Aggregate message analytics
// @Description  Returns totals, distinct sender count, the top 10 senders and the first/last message timestamps.
// @Tags         stats
// @Produce      json
// @Success      200 {object} StatsResponse "Aggregate statistics"
// @Failure      500 {object} ErrorResponse "Storage failure"
// @Router       /stats [get]
func (h *Handler) GetStatsHandler(c echo.Context) error {
	logger := c.Logger()

	stats, err := h.Store.Stats()
	if err != nil {
		logger.Error("Failed to compute stats:", err)
		return echo.ErrInternalServerError
	}

	perSender := make([]SenderStats, 0, len(stats.TopSenders))
	for _, s := range stats.TopSenders {
		perSender = append(perSender, SenderStats{From: s.FromMSISDN, Count: s.Count})
	}

	resp := StatsResponse{
		TotalMessages:     stats.TotalMessages,
		SendersCount:      stats.SendersCount,
		MessagesPerSender: perSender,
	}
	if stats.FirstTs != nil {
		t := stats.FirstTs.UTC()
		resp.FirstMessageTs = &t
	}
	if stats.LastTs != nil {
		t := stats.LastTs.UTC()
		resp.LastMessageTs = &t
	}

	logger.Debugf("Stats retrieved: total=%d, senders=%d", resp.TotalMessages, resp.SendersCount)

	return c.JSON(http.StatusOK, resp)
}
