// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"context"
	"strings"
	"time"

	"lyftr-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store wraps the gorm connection with the message persistence
// operations the handlers need.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListFilters narrows a List call. Zero values mean no filtering.
type ListFilters struct {
	// From is an exact match on the sender MSISDN.
	From string
	// Since is an inclusive lower bound on the message timestamp.
	Since *time.Time
	// Query is a case-insensitive substring match on the message text.
	Query string
}

// SenderCount is one row of the top-senders aggregate.
type SenderCount struct {
	FromMSISDN string `gorm:"column:from_msisdn"`
	Count      int64  `gorm:"column:count"`
}

// StatsResult holds the aggregate analytics over all stored messages.
// FirstTs and LastTs are nil when the store is empty.
type StatsResult struct {
	TotalMessages int64
	SendersCount  int64
	TopSenders    []SenderCount
	FirstTs       *time.Time
	LastTs        *time.Time
}

// InsertIfAbsent inserts msg only when no row with its message_id
// exists, assigning created_at at insertion time. Returns true when a
// row was inserted, false when the id was already present. The
// conditional insert is a single statement backed by the primary key
// constraint, so concurrent calls with the same id admit exactly one
// winner.
func (s *Store) InsertIfAbsent(msg *models.Message) (bool, error) {
	msg.CreatedAt = time.Now().UTC()
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// List returns one page of messages matching f, ordered by ts then
// message_id ascending, plus the total match count ignoring
// limit/offset. The text filter lowercases both sides, so matching is
// case-insensitive for ASCII text.
func (s *Store) List(f ListFilters, limit, offset int) ([]models.Message, int64, error) {
	q := s.db.Model(&models.Message{})
	if f.From != "" {
		q = q.Where("from_msisdn = ?", f.From)
	}
	if f.Since != nil {
		q = q.Where("ts >= ?", *f.Since)
	}
	if f.Query != "" {
		q = q.Where("LOWER(text) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}

	// Count and page run as separate sessions off the same filter chain.
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Message
	err := q.Session(&gorm.Session{}).
		Order("ts ASC, message_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Stats computes the aggregate analytics: total rows, distinct
// senders, the ten busiest senders (count descending, MSISDN ascending
// on ties) and the first/last message timestamps.
func (s *Store) Stats() (StatsResult, error) {
	var result StatsResult

	if err := s.db.Model(&models.Message{}).Count(&result.TotalMessages).Error; err != nil {
		return result, err
	}
	if err := s.db.Model(&models.Message{}).Distinct("from_msisdn").Count(&result.SendersCount).Error; err != nil {
		return result, err
	}
	err := s.db.Model(&models.Message{}).
		Select("from_msisdn, COUNT(*) AS count").
		Group("from_msisdn").
		Order("count DESC, from_msisdn ASC").
		Limit(10).
		Scan(&result.TopSenders).Error
	if err != nil {
		return result, err
	}

	if result.TotalMessages > 0 {
		var first, last models.Message
		if err := s.db.Order("ts ASC, message_id ASC").First(&first).Error; err != nil {
			return result, err
		}
		if err := s.db.Order("ts DESC, message_id DESC").First(&last).Error; err != nil {
			return result, err
		}
		firstTs := first.Ts
		lastTs := last.Ts
		result.FirstTs = &firstTs
		result.LastTs = &lastTs
	}
	return result, nil
}

// Ping probes database connectivity. The caller bounds the wait
// through ctx.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
