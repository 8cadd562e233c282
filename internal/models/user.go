package models

import "time"

type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash    string    `json:"-" gorm:"not null"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ZipCode         string    `json:"zipCode"`
	HowDidYouHear   string    `json:"howDidYouHear"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	ProfileImage    string    `json:"profileImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
