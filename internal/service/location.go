package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"velvetleash/server/config"
	"velvetleash/server/internal/models"
)

// ZipGeocoder resolves zip codes missing from the directory.
type ZipGeocoder interface {
	GeocodeZip(ctx context.Context, zipCode string) (config.ZipCode, error)
}

type LocationService struct {
	zips         *config.ZipDirectory
	geocoder     ZipGeocoder
	nearbyRadius float64
	logger       *logrus.Logger
}

// NewLocationService works without a geocoder; unknown zip codes are then not found.
func NewLocationService(zips *config.ZipDirectory, geocoder ZipGeocoder, cfg *config.Config, logger *logrus.Logger) *LocationService {
	return &LocationService{
		zips:         zips,
		geocoder:     geocoder,
		nearbyRadius: cfg.Search.NearbyCitiesRadiusKm,
		logger:       logger,
	}
}

func (s *LocationService) SearchZipCodes(query string) []config.ZipCode {
	return s.zips.Search(query)
}

// Coordinates looks zipCode up in the directory, then asks the geocoder. Geocoded entries are
// added to the directory.
func (s *LocationService) Coordinates(ctx context.Context, zipCode string) (config.ZipCode, error) {
	zipCode = strings.TrimSpace(zipCode)
	if z, ok := s.zips.Lookup(zipCode); ok {
		return z, nil
	}
	if s.geocoder == nil {
		return config.ZipCode{}, fmt.Errorf("zip code %s: %w", zipCode, models.ErrNotFound)
	}

	z, err := s.geocoder.GeocodeZip(ctx, zipCode)
	if err != nil {
		s.logger.WithError(err).WithField("zip_code", zipCode).Warn("Failed to geocode zip code")
		if errors.Is(err, context.Canceled) {
			return config.ZipCode{}, err
		}
		return config.ZipCode{}, fmt.Errorf("zip code %s: %w", zipCode, models.ErrNotFound)
	}
	s.zips.Add(z)
	return z, nil
}

// ReverseGeocode returns the directory entry nearest to (lat, lon).
func (s *LocationService) ReverseGeocode(lat, lon float64) (config.NearbyZip, error) {
	if !models.ValidCoordinates(lat, lon) {
		return config.NearbyZip{}, fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	nearest, ok := s.zips.Nearest(lat, lon)
	if !ok {
		return config.NearbyZip{}, fmt.Errorf("location: %w", models.ErrNotFound)
	}
	return nearest, nil
}

// NearbyCities lists directory entries within radiusKm, nearest first. radiusKm <= 0 uses the configured radius.
func (s *LocationService) NearbyCities(lat, lon, radiusKm float64) ([]config.NearbyZip, error) {
	if !models.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	if radiusKm <= 0 {
		radiusKm = s.nearbyRadius
	}
	return s.zips.Within(lat, lon, radiusKm), nil
}

func (s *LocationService) States() []config.State {
	return config.States
}
