package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/database"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/security"
)

type UserService struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewUserService(db *database.Database, logger *logrus.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

type Registration struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	ZipCode       string
	HowDidYouHear string
}

// ProfileUpdate carries the profile fields to change. Empty fields are left alone.
type ProfileUpdate struct {
	UserID       uint
	FirstName    string
	LastName     string
	ZipCode      string
	ProfileImage string
}

const minPasswordLength = 8

func (s *UserService) Register(ctx context.Context, r Registration) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", models.ErrInvalidInput)
	}
	if len(r.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidInput, minPasswordLength)
	}

	existing, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := security.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:      email,
		Email:         email,
		PasswordHash:  hash,
		FirstName:     strings.TrimSpace(r.FirstName),
		LastName:      strings.TrimSpace(r.LastName),
		ZipCode:       strings.TrimSpace(r.ZipCode),
		HowDidYouHear: r.HowDidYouHear,
	}
	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("Registered user")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.db.GetUser(ctx, id)
}

// Pets lists the pets of an existing user.
func (s *UserService) Pets(ctx context.Context, id uint) ([]models.Pet, error) {
	if _, err := s.db.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return s.db.ListPets(ctx, &id)
}

func (s *UserService) UpdateProfile(ctx context.Context, u ProfileUpdate) (*models.User, error) {
	user, err := s.db.GetUser(ctx, u.UserID)
	if err != nil {
		return nil, err
	}

	if u.FirstName != "" {
		user.FirstName = u.FirstName
	}
	if u.LastName != "" {
		user.LastName = u.LastName
	}
	if u.ZipCode != "" {
		user.ZipCode = u.ZipCode
	}
	if u.ProfileImage != "" {
		user.ProfileImage = u.ProfileImage
	}

	if err := s.db.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
