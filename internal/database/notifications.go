package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"velvetleash/server/internal/models"
)

const notificationBatchSize = 100

// SaveNotifications inserts the batch in one transaction.
func (d *Database) SaveNotifications(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(notifications, notificationBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert notifications: %w", err)
		}
		return nil
	})
}

// ListNotifications returns a user's notifications, newest first.
func (d *Database) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (d *Database) CountUnreadNotifications(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (d *Database) MarkNotificationRead(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("notification", id)
	}
	return nil
}

func (d *Database) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	result := d.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (d *Database) DeleteNotification(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("notification", id)
	}
	return nil
}
