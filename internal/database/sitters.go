package database

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"velvetleash/server/internal/models"
)

func (d *Database) ListSitters(ctx context.Context) ([]models.Sitter, error) {
	var sitters []models.Sitter
	if err := d.db.WithContext(ctx).Order("id").Find(&sitters).Error; err != nil {
		return nil, fmt.Errorf("failed to list sitters: %w", err)
	}
	return sitters, nil
}

// ListAvailableSitters returns sitters with IsAvailable set, ordered by id.
func (d *Database) ListAvailableSitters(ctx context.Context) ([]models.Sitter, error) {
	var sitters []models.Sitter
	if err := d.db.WithContext(ctx).Where("is_available = ?", true).Order("id").Find(&sitters).Error; err != nil {
		return nil, fmt.Errorf("failed to list available sitters: %w", err)
	}
	return sitters, nil
}

func (d *Database) GetSitter(ctx context.Context, id uint) (*models.Sitter, error) {
	var sitter models.Sitter
	if err := first(d.db.WithContext(ctx), &sitter, "sitter", id); err != nil {
		return nil, err
	}
	return &sitter, nil
}

func (d *Database) CreateSitter(ctx context.Context, sitter *models.Sitter) error {
	if err := d.db.WithContext(ctx).Create(sitter).Error; err != nil {
		return fmt.Errorf("failed to create sitter: %w", err)
	}
	return nil
}

func (d *Database) UpdateSitter(ctx context.Context, sitter *models.Sitter) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Save(sitter).Error; err != nil {
		return fmt.Errorf("failed to update sitter %d: %w", sitter.ID, err)
	}
	return nil
}
