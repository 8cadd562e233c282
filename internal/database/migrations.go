package database

import (
	"fmt"

	"velvetleash/server/internal/models"
)

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(
		&models.User{},
		&models.Sitter{},
		&models.Pet{},
		&models.BoardingRequest{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Availability lookups filter by sitter and date window
	if err := d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_boarding_requests_sitter_dates
		ON boarding_requests(sitter_id, start_date, end_date);
	`).Error; err != nil {
		return err
	}

	if err := d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sitters_coordinates
		ON sitters(latitude, longitude);
	`).Error; err != nil {
		return err
	}

	return nil
}
