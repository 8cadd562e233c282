package api

import (
	"context"

	"velvetleash/server/config"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/search"
	"velvetleash/server/internal/service"
)

type SitterService interface {
	Search(ctx context.Context, f search.SitterFilter) ([]models.Sitter, error)
	Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.RankedSitter, error)
	Get(ctx context.Context, id uint) (*models.Sitter, error)
	Create(ctx context.Context, sitter *models.Sitter) error
	Update(ctx context.Context, id uint, sitter *models.Sitter) error
}

type BoardingService interface {
	List(ctx context.Context, userID *uint) ([]models.BoardingRequest, error)
	Get(ctx context.Context, id uint) (*models.BoardingRequest, error)
	Create(ctx context.Context, req *models.BoardingRequest) error
	Update(ctx context.Context, id uint, input *models.BoardingRequest) (*models.BoardingRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.BoardingRequest, error)
	Delete(ctx context.Context, id uint) error
}

type PetService interface {
	List(ctx context.Context, userID *uint) ([]models.Pet, error)
	Get(ctx context.Context, id uint) (*models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, id uint, pet *models.Pet) error
	Delete(ctx context.Context, id uint) error
}

type UserService interface {
	Register(ctx context.Context, r service.Registration) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Pets(ctx context.Context, id uint) ([]models.Pet, error)
	UpdateProfile(ctx context.Context, u service.ProfileUpdate) (*models.User, error)
}

type LocationService interface {
	SearchZipCodes(query string) []config.ZipCode
	Coordinates(ctx context.Context, zipCode string) (config.ZipCode, error)
	ReverseGeocode(lat, lon float64) (config.NearbyZip, error)
	NearbyCities(lat, lon, radiusKm float64) ([]config.NearbyZip, error)
	States() []config.State
}

type NotificationService interface {
	List(ctx context.Context, userID uint, page, pageSize int) (*service.NotificationPage, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Services bundles what the handlers call into.
type Services struct {
	Sitters       SitterService
	Boarding      BoardingService
	Pets          PetService
	Users         UserService
	Locations     LocationService
	Notifications NotificationService
	Health        HealthChecker
}
