package models

import "time"

// BoardingRequest is an owner's request to board a pet, optionally with a chosen sitter.
type BoardingRequest struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	DogSize             string         `json:"dogSize"`
	DogAge              string         `json:"dogAge"`
	GetAlongWithDogs    string         `json:"getAlongWithDogs"`
	GetAlongWithCats    string         `json:"getAlongWithCats"`
	StartDate           time.Time      `json:"startDate" gorm:"not null;index"`
	EndDate             time.Time      `json:"endDate" gorm:"not null;index"`
	SpecialInstructions string         `json:"specialInstructions"`
	UserID              uint           `json:"userId" gorm:"not null;index"`
	User                *User          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SitterID            *uint          `json:"sitterId" gorm:"index"`
	Sitter              *Sitter        `json:"sitter" gorm:"constraint:OnDelete:SET NULL"`
	PetID               *uint          `json:"petId"`
	Pet                 *Pet           `json:"pet" gorm:"constraint:OnDelete:SET NULL"`
	Status              BoardingStatus `json:"status" gorm:"type:text;not null;index"`
	TotalPrice          float64        `json:"totalPrice"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (r BoardingRequest) Dates() DateRange {
	return DateRange{Start: Date(r.StartDate), End: Date(r.EndDate)}
}

// HasSitter reports whether a sitter is assigned.
func (r BoardingRequest) HasSitter() bool {
	return r.SitterID != nil && *r.SitterID != 0
}

type EventType string

const (
	EventBoardingCreated EventType = "boarding.created"
	EventBoardingUpdated EventType = "boarding.updated"
	EventStatusChanged   EventType = "boarding.status_changed"
)

// BoardingEvent describes a lifecycle change of a boarding request.
type BoardingEvent struct {
	Type       EventType
	RequestID  uint
	UserID     uint
	SitterID   *uint
	Status     BoardingStatus
	Previous   BoardingStatus
	TotalPrice float64
	OccurredAt time.Time
}

func NewBoardingEvent(t EventType, r *BoardingRequest, previous BoardingStatus, at time.Time) BoardingEvent {
	return BoardingEvent{
		Type:       t,
		RequestID:  r.ID,
		UserID:     r.UserID,
		SitterID:   r.SitterID,
		Status:     r.Status,
		Previous:   previous,
		TotalPrice: r.TotalPrice,
		OccurredAt: at,
	}
}
