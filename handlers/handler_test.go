// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lyftr-server/commons"
	"lyftr-server/crypto"
	"lyftr-server/metrics"
	"lyftr-server/migrations"
	"lyftr-server/store"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "testsecret"

func newTestServer(t *testing.T) (*echo.Echo, *Handler) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	mig := gormigrate.New(conn, gormigrate.DefaultOptions, migrations.List())
	if err := mig.Migrate(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cfg := &commons.Config{
		WebhookSecret:    testSecret,
		DefaultPageLimit: 50,
		MaxPageLimit:     100,
		EnableMetrics:    true,
	}
	h := NewHandler(store.New(conn), metrics.New(true), cfg)

	e := echo.New()
	e.POST("/webhook", h.WebhookHandler)
	e.GET("/messages", h.GetMessagesHandler)
	e.GET("/stats", h.GetStatsHandler)
	e.GET("/health/live", h.LivenessHandler)
	e.GET("/health/ready", h.ReadinessHandler)
	e.GET("/metrics", h.MetricsHandler)
	return e, h
}

func doRequest(e *echo.Echo, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// postSignedWebhook marshals payload, signs the exact bytes sent and
// posts them to /webhook.
func postSignedWebhook(t *testing.T, e *echo.Echo, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	return doRequest(e, http.MethodPost, "/webhook", body, map[string]string{
		"X-Signature": crypto.ComputeSignature(body, testSecret),
	})
}

func webhookPayload(id string) map[string]any {
	return map[string]any{
		"message_id": id,
		"from":       "+919876543210",
		"to":         "+14155550100",
		"ts":         "2025-01-15T10:00:00Z",
		"text":       "Hello",
	}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}
