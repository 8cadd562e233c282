package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"velvetleash/server/internal/models"
)

// ListBoardingRequests returns requests with sitter and pet loaded, optionally for one user.
func (d *Database) ListBoardingRequests(ctx context.Context, userID *uint) ([]models.BoardingRequest, error) {
	query := d.db.WithContext(ctx).Preload("Sitter").Preload("Pet").Order("id")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var requests []models.BoardingRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list boarding requests: %w", err)
	}
	return requests, nil
}

func (d *Database) GetBoardingRequest(ctx context.Context, id uint) (*models.BoardingRequest, error) {
	var request models.BoardingRequest
	if err := first(d.db.WithContext(ctx).Preload("Sitter").Preload("Pet"), &request, "boarding request", id); err != nil {
		return nil, err
	}
	return &request, nil
}

// FindBlockingRequests returns requests that hold a sitter's calendar inside window.
// A nil sitterID searches every sitter.
func (d *Database) FindBlockingRequests(ctx context.Context, window models.DateRange, sitterID *uint) ([]models.BoardingRequest, error) {
	query := d.db.WithContext(ctx).
		Where("sitter_id IS NOT NULL").
		Where("status NOT IN ?", []models.BoardingStatus{models.StatusRejected, models.StatusCancelled}).
		Where("start_date <= ? AND end_date >= ?", window.End, window.Start)
	if sitterID != nil {
		query = query.Where("sitter_id = ?", *sitterID)
	}

	var requests []models.BoardingRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to find overlapping requests: %w", err)
	}
	return requests, nil
}

func (d *Database) CreateBoardingRequest(ctx context.Context, request *models.BoardingRequest) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create boarding request: %w", err)
	}
	return nil
}

func (d *Database) SaveBoardingRequest(ctx context.Context, request *models.BoardingRequest) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Save(request).Error; err != nil {
		return fmt.Errorf("failed to save boarding request %d: %w", request.ID, err)
	}
	return nil
}

func (d *Database) DeleteBoardingRequest(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&models.BoardingRequest{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete boarding request %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("boarding request", id)
	}
	return nil
}

// ListElapsedAccepted returns accepted requests whose last day is before day.
func (d *Database) ListElapsedAccepted(ctx context.Context, day time.Time) ([]models.BoardingRequest, error) {
	var requests []models.BoardingRequest
	err := d.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", models.StatusAccepted, models.Date(day)).
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list elapsed requests: %w", err)
	}
	return requests, nil
}
