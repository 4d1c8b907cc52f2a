// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"lyftr-server/commons"
	"lyftr-server/metrics"
	"lyftr-server/store"
)

// Handler carries the shared dependencies for all HTTP handlers.
type Handler struct {
	Store   *store.Store
	Metrics *metrics.Metrics
	Config  *commons.Config
}

func NewHandler(s *store.Store, m *metrics.Metrics, cfg *commons.Config) *Handler {
	return &Handler{Store: s, Metrics: m, Config: cfg}
}
