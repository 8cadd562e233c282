package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/database"
	"velvetleash/server/internal/models"
)

type PetService struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewPetService(db *database.Database, logger *logrus.Logger) *PetService {
	return &PetService{db: db, logger: logger}
}

// List returns pets ordered by name, optionally only those of one owner.
func (s *PetService) List(ctx context.Context, userID *uint) ([]models.Pet, error) {
	return s.db.ListPets(ctx, userID)
}

func (s *PetService) Get(ctx context.Context, id uint) (*models.Pet, error) {
	return s.db.GetPet(ctx, id)
}

func (s *PetService) Create(ctx context.Context, pet *models.Pet) error {
	pet.ID = 0
	if err := s.validate(ctx, pet); err != nil {
		return err
	}
	return s.db.CreatePet(ctx, pet)
}

func (s *PetService) Update(ctx context.Context, id uint, pet *models.Pet) error {
	existing, err := s.db.GetPet(ctx, id)
	if err != nil {
		return err
	}
	pet.ID = existing.ID
	pet.CreatedAt = existing.CreatedAt
	if pet.UserID == 0 {
		pet.UserID = existing.UserID
	}
	if err := s.validate(ctx, pet); err != nil {
		return err
	}
	return s.db.UpdatePet(ctx, pet)
}

func (s *PetService) Delete(ctx context.Context, id uint) error {
	return s.db.DeletePet(ctx, id)
}

func (s *PetService) validate(ctx context.Context, pet *models.Pet) error {
	pet.Name = strings.TrimSpace(pet.Name)

	var errs []error
	if pet.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !pet.Type.Valid() {
		errs = append(errs, fmt.Errorf("unknown pet type %d", pet.Type))
	}
	if pet.Size != 0 && !pet.Size.Valid() {
		errs = append(errs, fmt.Errorf("unknown pet size %d", pet.Size))
	}
	if pet.Age != 0 && !pet.Age.Valid() {
		errs = append(errs, fmt.Errorf("unknown pet age %d", pet.Age))
	}
	if pet.UserID == 0 {
		errs = append(errs, errors.New("userId is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	if _, err := s.db.GetUser(ctx, pet.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: user not found", models.ErrInvalidInput)
		}
		return err
	}
	return nil
}
