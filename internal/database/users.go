package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"velvetleash/server/internal/models"
)

func (d *Database) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := first(d.db.WithContext(ctx), &user, "user", id); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns nil, nil when no user has the address.
func (d *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// CreateUser returns models.ErrEmailTaken when the email is already registered.
func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	err := d.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (d *Database) UpdateUser(ctx context.Context, user *models.User) error {
	if err := d.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}

func (d *Database) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
