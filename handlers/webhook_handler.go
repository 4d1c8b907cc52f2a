// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"lyftr-server/crypto"
	"lyftr-server/metrics"
	"lyftr-server/models"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// WebhookHandler godoc
// @Summary      Ingest a signed webhook message
// @Description  Verifies the X-Signature HMAC over the raw request body, validates the payload and stores it idempotently by message_id. Duplicates are a success, not an error.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        X-Signature  header  string  true  "Hex-encoded HMAC-SHA256 of the raw request body"
// @Param        webhookPayload  body  WebhookPayload  true  "Webhook message payload"
// @Success      200 {object} WebhookResponse "Message created or already stored"
// @Failure      401 {object} ErrorResponse   "Missing or invalid signature"
// @Failure      422 {object} ErrorResponse   "Payload failed validation"
// @Failure      500 {object} ErrorResponse   "Storage failure"
// @Router       /webhook [post]
func (h *Handler) WebhookHandler(c echo.Context) error {
	logger := c.Logger()
	start := time.Now()

	// Signature verification runs over the exact wire bytes, before
	// any JSON decoding.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error("Failed to read webhook request body:", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "could not read request body"})
	}

	signature := c.Request().Header.Get("X-Signature")
	if !crypto.VerifySignature(body, signature, h.Config.WebhookSecret) {
		// Nothing about the body is logged for rejected signatures.
		h.Metrics.RecordWebhookRequest(metrics.ResultInvalidSignature)
		logger.Infoj(log.JSON{
			"path":       "/webhook",
			"result":     metrics.ResultInvalidSignature,
			"status":     http.StatusUnauthorized,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "invalid signature"})
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.Metrics.RecordWebhookRequest(metrics.ResultValidationError)
		logger.Error("Malformed webhook payload:", err)
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Detail: "request body must be a valid JSON object",
		})
	}

	ts, fieldErrors := payload.Validate()
	if len(fieldErrors) > 0 {
		h.Metrics.RecordWebhookRequest(metrics.ResultValidationError)
		logger.Infoj(log.JSON{
			"path":       "/webhook",
			"message_id": payload.MessageID,
			"result":     metrics.ResultValidationError,
			"status":     http.StatusUnprocessableEntity,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: fieldErrors})
	}

	msg := models.Message{
		MessageID:  payload.MessageID,
		FromMSISDN: payload.From,
		ToMSISDN:   payload.To,
		Ts:         ts,
		Text:       payload.Text,
	}
	inserted, err := h.Store.InsertIfAbsent(&msg)
	if err != nil {
		logger.Error("Failed to insert message:", err)
		return echo.ErrInternalServerError
	}

	result := metrics.ResultCreated
	if !inserted {
		result = metrics.ResultDuplicate
	}
	h.Metrics.RecordWebhookRequest(result)

	logger.Infoj(log.JSON{
		"path":       "/webhook",
		"message_id": payload.MessageID,
		"dup":        !inserted,
		"result":     result,
		"status":     http.StatusOK,
		"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})

	return c.JSON(http.StatusOK, WebhookResponse{Status: "ok"})
}
