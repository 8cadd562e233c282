package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"velvetleash/server/config"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/search"
	"velvetleash/server/internal/service"
)

type MockSitterService struct{ mock.Mock }

func (m *MockSitterService) Search(ctx context.Context, f search.SitterFilter) ([]models.Sitter, error) {
	args := m.Called(f)
	return args.Get(0).([]models.Sitter), args.Error(1)
}

func (m *MockSitterService) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.RankedSitter, error) {
	args := m.Called(lat, lon, radiusKm)
	return args.Get(0).([]models.RankedSitter), args.Error(1)
}

func (m *MockSitterService) Get(ctx context.Context, id uint) (*models.Sitter, error) {
	args := m.Called(id)
	s, _ := args.Get(0).(*models.Sitter)
	return s, args.Error(1)
}

func (m *MockSitterService) Create(ctx context.Context, sitter *models.Sitter) error {
	args := m.Called(sitter)
	return args.Error(0)
}

func (m *MockSitterService) Update(ctx context.Context, id uint, sitter *models.Sitter) error {
	args := m.Called(id, sitter)
	return args.Error(0)
}

type MockBoardingService struct{ mock.Mock }

func (m *MockBoardingService) List(ctx context.Context, userID *uint) ([]models.BoardingRequest, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.BoardingRequest), args.Error(1)
}

func (m *MockBoardingService) Get(ctx context.Context, id uint) (*models.BoardingRequest, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.BoardingRequest)
	return r, args.Error(1)
}

func (m *MockBoardingService) Create(ctx context.Context, req *models.BoardingRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockBoardingService) Update(ctx context.Context, id uint, input *models.BoardingRequest) (*models.BoardingRequest, error) {
	args := m.Called(id, input)
	r, _ := args.Get(0).(*models.BoardingRequest)
	return r, args.Error(1)
}

func (m *MockBoardingService) UpdateStatus(ctx context.Context, id uint, status string) (*models.BoardingRequest, error) {
	args := m.Called(id, status)
	r, _ := args.Get(0).(*models.BoardingRequest)
	return r, args.Error(1)
}

func (m *MockBoardingService) Delete(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

type MockPetService struct{ mock.Mock }

func (m *MockPetService) List(ctx context.Context, userID *uint) ([]models.Pet, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockPetService) Get(ctx context.Context, id uint) (*models.Pet, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*models.Pet)
	return p, args.Error(1)
}

func (m *MockPetService) Create(ctx context.Context, pet *models.Pet) error {
	return m.Called(pet).Error(0)
}

func (m *MockPetService) Update(ctx context.Context, id uint, pet *models.Pet) error {
	return m.Called(id, pet).Error(0)
}

func (m *MockPetService) Delete(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, r service.Registration) (*models.User, error) {
	args := m.Called(r)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserService) Pets(ctx context.Context, id uint) ([]models.Pet, error) {
	args := m.Called(id)
	p, _ := args.Get(0).([]models.Pet)
	return p, args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, u service.ProfileUpdate) (*models.User, error) {
	args := m.Called(u)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockLocationService struct{ mock.Mock }

func (m *MockLocationService) SearchZipCodes(query string) []config.ZipCode {
	return m.Called(query).Get(0).([]config.ZipCode)
}

func (m *MockLocationService) Coordinates(ctx context.Context, zipCode string) (config.ZipCode, error) {
	args := m.Called(zipCode)
	return args.Get(0).(config.ZipCode), args.Error(1)
}

func (m *MockLocationService) ReverseGeocode(lat, lon float64) (config.NearbyZip, error) {
	args := m.Called(lat, lon)
	return args.Get(0).(config.NearbyZip), args.Error(1)
}

func (m *MockLocationService) NearbyCities(lat, lon, radiusKm float64) ([]config.NearbyZip, error) {
	args := m.Called(lat, lon, radiusKm)
	return args.Get(0).([]config.NearbyZip), args.Error(1)
}

func (m *MockLocationService) States() []config.State {
	return m.Called().Get(0).([]config.State)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) List(ctx context.Context, userID uint, page, pageSize int) (*service.NotificationPage, error) {
	args := m.Called(userID, page, pageSize)
	p, _ := args.Get(0).(*service.NotificationPage)
	return p, args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}
