// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

var AllModels []any

// Message is the sole persisted entity: one row per webhook message,
// keyed by the caller-supplied message_id. Rows are created exactly
// once and never updated or deleted.
type Message struct {
	MessageID  string    `gorm:"column:message_id;primaryKey;size:255" json:"message_id"`
	FromMSISDN string    `gorm:"column:from_msisdn;size:16;not null;index" json:"from"`
	ToMSISDN   string    `gorm:"column:to_msisdn;size:16;not null" json:"to"`
	Ts         time.Time `gorm:"column:ts;not null;index" json:"ts"`
	Text       *string   `gorm:"column:text;type:text" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

func init() {
	AllModels = append(AllModels, &Message{})
}
