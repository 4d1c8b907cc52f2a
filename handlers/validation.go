// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// E.164: a plus sign followed by 1 to 15 digits.
var e164Regex = regexp.MustCompile(`^\+[0-9]{1,15}$`)

const maxTextLength = 4096

// Validate checks every payload rule and enumerates all failing
// fields rather than stopping at the first. On success it returns the
// parsed UTC timestamp.
func (p WebhookPayload) Validate() (time.Time, []FieldError) {
	var fieldErrors []FieldError
	var ts time.Time

	if strings.TrimSpace(p.MessageID) == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "message_id",
			Message: "message_id is required and cannot be empty",
		})
	}
	if !e164Regex.MatchString(p.From) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "from",
			Message: "from must be in E.164 format: '+' followed by 1-15 digits",
		})
	}
	if !e164Regex.MatchString(p.To) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "to",
			Message: "to must be in E.164 format: '+' followed by 1-15 digits",
		})
	}

	parsed, err := time.Parse(time.RFC3339, p.Ts)
	if err != nil || !strings.HasSuffix(p.Ts, "Z") {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "ts",
			Message: "ts must be a UTC ISO-8601 timestamp with a 'Z' suffix",
		})
	} else {
		ts = parsed.UTC()
	}

	if p.Text != nil && utf8.RuneCountInString(*p.Text) > maxTextLength {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "text",
			Message: "text must be at most 4096 characters",
		})
	}

	return ts, fieldErrors
}
