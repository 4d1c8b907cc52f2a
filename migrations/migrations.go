// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"lyftr-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_create_messages",
			Migrate: func(tx *gorm.DB) error {
				// AutoMigrate also creates the from_msisdn and ts
				// secondary indexes declared on the model.
				if err := tx.AutoMigrate(models.AllModels...); err != nil {
					return fmt.Errorf("failed to create messages table: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.Message{})
			},
		},
	}
}
