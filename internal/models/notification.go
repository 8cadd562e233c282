package models

import "time"

type NotificationType string

const (
	NotificationBoardingCreated NotificationType = "boarding_created"
	NotificationBoardingUpdated NotificationType = "boarding_updated"
	NotificationStatusChanged   NotificationType = "boarding_status_changed"
)

// Notification is a message stored for a user, produced from boarding events.
type Notification struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	UserID            uint             `json:"userId" gorm:"not null;index"`
	BoardingRequestID *uint            `json:"boardingRequestId"`
	Type              NotificationType `json:"type" gorm:"type:text;not null"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	IsRead            bool             `json:"isRead" gorm:"index"`
	CreatedAt         time.Time        `json:"createdAt"`
}
