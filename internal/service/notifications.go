package service

import (
	"context"

	"velvetleash/server/internal/database"
	"velvetleash/server/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type NotificationService struct {
	db *database.Database
}

func NewNotificationService(db *database.Database) *NotificationService {
	return &NotificationService{db: db}
}

// NotificationPage is one page of a user's notifications, newest first.
type NotificationPage struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int                   `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
	TotalPages    int                   `json:"totalPages"`
}

func (s *NotificationService) List(ctx context.Context, userID uint, page, pageSize int) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	all, err := s.db.ListNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return &NotificationPage{
		Notifications: all[start:end],
		Total:         len(all),
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    (len(all) + pageSize - 1) / pageSize,
	}, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.db.CountUnreadNotifications(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return s.db.MarkNotificationRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.db.MarkAllNotificationsRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	return s.db.DeleteNotification(ctx, id)
}
