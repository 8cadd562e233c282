// Package service holds the application operations behind the HTTP handlers.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"velvetleash/server/config"
	"velvetleash/server/internal/database"
	"velvetleash/server/internal/geometry"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/proximity"
	"velvetleash/server/internal/search"
)

type SitterService struct {
	db            *database.Database
	ranker        proximity.Ranker
	zips          *config.ZipDirectory
	defaultRadius float64
	logger        *logrus.Logger
}

func NewSitterService(db *database.Database, ranker proximity.Ranker, zips *config.ZipDirectory, cfg *config.Config, logger *logrus.Logger) *SitterService {
	radius := cfg.Search.DefaultRadiusKm
	if radius <= 0 {
		radius = proximity.DefaultRadiusKm
	}
	return &SitterService{
		db:            db,
		ranker:        ranker,
		zips:          zips,
		defaultRadius: radius,
		logger:        logger,
	}
}

// Search returns available sitters matching f. With an origin the result is ranked by
// distance, otherwise it is ordered by id. An empty result is not an error.
func (s *SitterService) Search(ctx context.Context, f search.SitterFilter) ([]models.Sitter, error) {
	sitters, err := s.db.ListSitters(ctx)
	if err != nil {
		return nil, err
	}

	var bookings []models.BoardingRequest
	if window, ok := f.Window(); ok {
		bookings, err = s.db.FindBlockingRequests(ctx, window, nil)
		if err != nil {
			return nil, err
		}
	}

	matches := search.Apply(f, sitters, bookings)

	origin, radius, ok := f.Origin()
	if !ok {
		return matches, nil
	}
	if radius <= 0 {
		radius = s.defaultRadius
	}
	ranked, err := s.ranker.Rank(ctx, origin, radius, matches)
	if err != nil {
		return nil, err
	}
	return proximity.Sitters(ranked), nil
}

// Nearby ranks every available sitter within radiusKm of (lat, lon). radiusKm <= 0 means the default radius.
func (s *SitterService) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.RankedSitter, error) {
	if !models.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadius
	}

	sitters, err := s.db.ListAvailableSitters(ctx)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(ctx, geometry.NewPoint(lat, lon), radiusKm, sitters)
}

func (s *SitterService) Get(ctx context.Context, id uint) (*models.Sitter, error) {
	return s.db.GetSitter(ctx, id)
}

func (s *SitterService) Create(ctx context.Context, sitter *models.Sitter) error {
	sitter.ID = 0
	if err := s.prepare(sitter); err != nil {
		return err
	}
	if err := s.db.CreateSitter(ctx, sitter); err != nil {
		return err
	}
	s.index(ctx, *sitter)
	return nil
}

// Update overwrites the stored sitter id with the fields of sitter.
func (s *SitterService) Update(ctx context.Context, id uint, sitter *models.Sitter) error {
	existing, err := s.db.GetSitter(ctx, id)
	if err != nil {
		return err
	}

	sitter.ID = existing.ID
	sitter.CreatedAt = existing.CreatedAt
	if err := s.prepare(sitter); err != nil {
		return err
	}
	if err := s.db.UpdateSitter(ctx, sitter); err != nil {
		return err
	}
	s.index(ctx, *sitter)
	return nil
}

// Reindex loads every sitter into the ranker's index when it keeps one.
func (s *SitterService) Reindex(ctx context.Context) error {
	indexer, ok := s.ranker.(proximity.Indexer)
	if !ok {
		return nil
	}
	sitters, err := s.db.ListSitters(ctx)
	if err != nil {
		return err
	}
	if err := indexer.Index(ctx, sitters...); err != nil {
		return err
	}
	s.logger.WithField("count", len(sitters)).Info("Indexed sitter positions")
	return nil
}

func (s *SitterService) prepare(sitter *models.Sitter) error {
	sitter.Name = strings.TrimSpace(sitter.Name)
	sitter.ZipCode = strings.TrimSpace(sitter.ZipCode)

	var errs []error
	if sitter.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if sitter.PricePerNight < 0 {
		errs = append(errs, errors.New("pricePerNight must not be negative"))
	}
	if sitter.Rating < 0 || sitter.Rating > 5 {
		errs = append(errs, errors.New("rating must be between 0 and 5"))
	}

	if sitter.Latitude == 0 && sitter.Longitude == 0 && sitter.ZipCode != "" {
		if z, ok := s.zips.Lookup(sitter.ZipCode); ok {
			sitter.Latitude, sitter.Longitude = z.Latitude, z.Longitude
			if sitter.Location == "" {
				sitter.Location = fmt.Sprintf("%s, %s", z.City, z.State)
			}
		}
	}
	if !models.ValidCoordinates(sitter.Latitude, sitter.Longitude) {
		errs = append(errs, errors.New("coordinates out of range"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	return nil
}

// index keeps the ranker's own position index in sync. The database stays the source of truth,
// so failures are only logged.
func (s *SitterService) index(ctx context.Context, sitter models.Sitter) {
	indexer, ok := s.ranker.(proximity.Indexer)
	if !ok {
		return
	}
	if err := indexer.Index(ctx, sitter); err != nil {
		s.logger.WithError(err).WithField("sitter_id", sitter.ID).Error("Failed to index sitter position")
	}
}
