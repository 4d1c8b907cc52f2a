// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "time"

// swagger:model WebhookPayload
type WebhookPayload struct {
	// Unique message identifier
	// required: true
	MessageID string `json:"message_id" example:"m1"`
	// Sender MSISDN in E.164 format
	// required: true
	From string `json:"from" example:"+919876543210"`
	// Recipient MSISDN in E.164 format
	// required: true
	To string `json:"to" example:"+14155550100"`
	// Message timestamp, UTC ISO-8601 with Z suffix
	// required: true
	Ts string `json:"ts" example:"2025-01-15T10:00:00Z"`
	// Optional message text, at most 4096 characters
	Text *string `json:"text" example:"Hello"`
}

// swagger:model WebhookResponse
type WebhookResponse struct {
	// Processing status
	Status string `json:"status" example:"ok"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	// Failure detail: a string for auth/bounds errors, a list of field
	// errors for payload validation failures.
	Detail any `json:"detail"`
}

// swagger:model FieldError
type FieldError struct {
	// Name of the offending payload field
	Field string `json:"field" example:"from"`
	// Why the field was rejected
	Message string `json:"message" example:"must be in E.164 format"`
}

// swagger:model MessageDetails
type MessageDetails struct {
	// Unique message identifier
	MessageID string `json:"message_id" example:"m1"`
	// Sender MSISDN
	From string `json:"from" example:"+919876543210"`
	// Recipient MSISDN
	To string `json:"to" example:"+14155550100"`
	// Message timestamp
	Ts time.Time `json:"ts" example:"2025-01-15T10:00:00Z"`
	// Message text, null when absent
	Text *string `json:"text" example:"Hello"`
	// Server-assigned timestamp of first insertion
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T10:00:01Z"`
}

// swagger:model MessageListResponse
type MessageListResponse struct {
	// Page of messages in ts, message_id ascending order
	Data []MessageDetails `json:"data"`
	// Count of all messages matching the filters
	Total int64 `json:"total"`
	// Page size used
	Limit int `json:"limit"`
	// Page offset used
	Offset int `json:"offset"`
}

// swagger:model SenderStats
type SenderStats struct {
	// Sender MSISDN
	From string `json:"from" example:"+919876543210"`
	// Number of messages from this sender
	Count int64 `json:"count" example:"5"`
}

// swagger:model StatsResponse
type StatsResponse struct {
	// Total number of stored messages
	TotalMessages int64 `json:"total_messages"`
	// Number of distinct senders
	SendersCount int64 `json:"senders_count"`
	// Top 10 senders by message count, count DESC then from ASC
	MessagesPerSender []SenderStats `json:"messages_per_sender"`
	// Timestamp of the earliest message, null when empty
	FirstMessageTs *time.Time `json:"first_message_ts"`
	// Timestamp of the latest message, null when empty
	LastMessageTs *time.Time `json:"last_message_ts"`
}

// swagger:model HealthResponse
type HealthResponse struct {
	// Health status
	Status string `json:"status" example:"ok"`
	// Time the probe ran
	Timestamp time.Time `json:"timestamp"`
	// Database connectivity, only set by the readiness probe
	Database string `json:"database,omitempty" example:"connected"`
}
