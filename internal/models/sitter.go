package models

import "time"

// Sitter is a boarding host that can be searched by zip code, pet acceptance and location.
type Sitter struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Location      string    `json:"location"`
	Rating        float64   `json:"rating"`
	Bio           string    `json:"bio"`
	IsAvailable   bool      `json:"isAvailable" gorm:"index"`
	ProfileImage  string    `json:"profileImage"`
	PricePerNight float64   `json:"pricePerNight"`
	AcceptsDogs   bool      `json:"acceptsDogs"`
	AcceptsCats   bool      `json:"acceptsCats"`
	ZipCode       string    `json:"zipCode" gorm:"index"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ValidCoordinates reports whether lat/lon are inside the WGS84 ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// RankedSitter pairs a sitter with its distance from a query point.
type RankedSitter struct {
	Sitter     Sitter  `json:"sitter"`
	DistanceKm float64 `json:"distanceKm"`
}
