package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/database"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/pricing"
	"velvetleash/server/internal/search"
)

// EventPublisher receives boarding lifecycle events after they are committed.
type EventPublisher interface {
	Publish(event models.BoardingEvent)
}

type BoardingService struct {
	db      *database.Database
	events  EventPublisher
	sitters *keyedMutex
	now     func() time.Time
	logger  *logrus.Logger
}

func NewBoardingService(db *database.Database, events EventPublisher, logger *logrus.Logger) *BoardingService {
	return &BoardingService{
		db:      db,
		events:  events,
		sitters: newKeyedMutex(),
		now:     time.Now,
		logger:  logger,
	}
}

func (s *BoardingService) List(ctx context.Context, userID *uint) ([]models.BoardingRequest, error) {
	return s.db.ListBoardingRequests(ctx, userID)
}

func (s *BoardingService) Get(ctx context.Context, id uint) (*models.BoardingRequest, error) {
	return s.db.GetBoardingRequest(ctx, id)
}

// Create stores a new request. With a sitter the total is priced from the sitter's rate and the
// sitter must be free for the whole stay.
func (s *BoardingService) Create(ctx context.Context, req *models.BoardingRequest) error {
	req.ID = 0
	if err := normalizeDates(req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	} else {
		status, err := models.ParseBoardingStatus(string(req.Status))
		if err != nil {
			return err
		}
		req.Status = status
	}

	if err := s.checkOwner(ctx, req.UserID); err != nil {
		return err
	}
	if err := s.checkPet(ctx, req.PetID); err != nil {
		return err
	}

	if !req.HasSitter() {
		req.SitterID = nil
		if err := s.db.CreateBoardingRequest(ctx, req); err != nil {
			return err
		}
	} else {
		unlock := s.sitters.Lock(*req.SitterID)
		err := s.db.Transaction(ctx, func(tx *database.Database) error {
			if err := reserve(ctx, tx, req, true); err != nil {
				return err
			}
			return tx.CreateBoardingRequest(ctx, req)
		})
		unlock()
		if err != nil {
			return err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"user_id":     req.UserID,
		"total_price": req.TotalPrice,
	}).Info("Boarding request saved")
	s.publish(models.EventBoardingCreated, req, "")
	return nil
}

// Update replaces the editable fields of request id with those of input. A non-nil
// input.SitterID assigns that sitter. An empty status keeps the current one.
func (s *BoardingService) Update(ctx context.Context, id uint, input *models.BoardingRequest) (*models.BoardingRequest, error) {
	if input.ID != 0 && input.ID != id {
		return nil, fmt.Errorf("%w: ID mismatch", models.ErrInvalidInput)
	}
	if err := normalizeDates(input); err != nil {
		return nil, err
	}

	existing, err := s.db.GetBoardingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPet(ctx, input.PetID); err != nil {
		return nil, err
	}

	sitterID := existing.SitterID
	if input.HasSitter() {
		sitterID = input.SitterID
	}
	if sitterID != nil {
		defer s.sitters.Lock(*sitterID)()
	}

	var updated *models.BoardingRequest
	var previous models.BoardingStatus
	err = s.db.Transaction(ctx, func(tx *database.Database) error {
		current, err := tx.GetBoardingRequest(ctx, id)
		if err != nil {
			return err
		}
		previous = current.Status

		next := current.Status
		if input.Status != "" {
			next, err = models.ParseBoardingStatus(string(input.Status))
			if err != nil {
				return err
			}
			if !current.Status.CanTransitionTo(next) {
				return fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, current.Status, next)
			}
		}

		recheck := !sameSitter(current.SitterID, sitterID) ||
			!current.StartDate.Equal(input.StartDate) ||
			!current.EndDate.Equal(input.EndDate) ||
			(!current.Status.BlocksAvailability() && next.BlocksAvailability())

		current.DogSize = input.DogSize
		current.DogAge = input.DogAge
		current.GetAlongWithDogs = input.GetAlongWithDogs
		current.GetAlongWithCats = input.GetAlongWithCats
		current.StartDate = input.StartDate
		current.EndDate = input.EndDate
		current.SpecialInstructions = input.SpecialInstructions
		current.Status = next
		if input.PetID != nil {
			current.PetID = input.PetID
		}
		current.SitterID = sitterID
		current.Sitter, current.Pet = nil, nil

		if current.HasSitter() {
			if err := reserve(ctx, tx, current, recheck); err != nil {
				return err
			}
		}
		if err := tx.SaveBoardingRequest(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(models.EventBoardingUpdated, updated, previous)
	if updated.Status != previous {
		s.publish(models.EventStatusChanged, updated, previous)
	}
	return s.db.GetBoardingRequest(ctx, id)
}

// UpdateStatus moves request id to status along the allowed transitions.
func (s *BoardingService) UpdateStatus(ctx context.Context, id uint, status string) (*models.BoardingRequest, error) {
	next, err := models.ParseBoardingStatus(status)
	if err != nil {
		return nil, err
	}

	req, err := s.db.GetBoardingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := req.Status
	if previous == next {
		return req, nil
	}
	if !previous.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, previous, next)
	}

	req.Status = next
	if err := s.db.SaveBoardingRequest(ctx, req); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": id,
		"from":       previous,
		"to":         next,
	}).Info("Boarding request status changed")
	s.publish(models.EventStatusChanged, req, previous)
	return req, nil
}

func (s *BoardingService) Delete(ctx context.Context, id uint) error {
	return s.db.DeleteBoardingRequest(ctx, id)
}

// CompleteElapsed marks accepted requests that ended before now's date as completed.
func (s *BoardingService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	requests, err := s.db.ListElapsedAccepted(ctx, now)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range requests {
		req := &requests[i]
		req.Status = models.StatusCompleted
		if err := s.db.SaveBoardingRequest(ctx, req); err != nil {
			return completed, err
		}
		completed++
		s.publish(models.EventStatusChanged, req, models.StatusAccepted)
	}
	return completed, nil
}

// reserve prices req from its sitter. With checkAvailability it also fails with
// ErrSitterUnavailable when the sitter is switched off or already holds an overlapping request.
// Must run inside tx.
func reserve(ctx context.Context, tx *database.Database, req *models.BoardingRequest, checkAvailability bool) error {
	sitter, err := tx.GetSitter(ctx, *req.SitterID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: sitter not found", models.ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	if err := pricing.Apply(req, sitter); err != nil {
		return err
	}

	if !checkAvailability || !req.Status.BlocksAvailability() {
		return nil
	}
	if !sitter.IsAvailable {
		return fmt.Errorf("%w: sitter %d is not taking bookings", models.ErrSitterUnavailable, sitter.ID)
	}

	window := req.Dates()
	blocking, err := tx.FindBlockingRequests(ctx, window, &sitter.ID)
	if err != nil {
		return err
	}
	if search.HasConflict(blocking, sitter.ID, window, req.ID) {
		return fmt.Errorf("%w: %s", models.ErrSitterUnavailable, window)
	}
	return nil
}

func sameSitter(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func normalizeDates(req *models.BoardingRequest) error {
	window, err := models.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	req.StartDate, req.EndDate = window.Start, window.End
	return nil
}

func (s *BoardingService) checkOwner(ctx context.Context, userID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: userId is required", models.ErrInvalidInput)
	}
	_, err := s.db.GetUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: user not found", models.ErrInvalidInput)
	}
	return err
}

func (s *BoardingService) checkPet(ctx context.Context, petID *uint) error {
	if petID == nil {
		return nil
	}
	_, err := s.db.GetPet(ctx, *petID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: pet not found", models.ErrInvalidInput)
	}
	return err
}

func (s *BoardingService) publish(t models.EventType, req *models.BoardingRequest, previous models.BoardingStatus) {
	if s.events == nil {
		return
	}
	s.events.Publish(models.NewBoardingEvent(t, req, previous, s.now()))
}
