package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"velvetleash/server/config"
	"velvetleash/server/internal/models"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) GeocodeZip(ctx context.Context, zipCode string) (config.ZipCode, error) {
	args := m.Called(zipCode)
	return args.Get(0).(config.ZipCode), args.Error(1)
}

func newLocationService(geocoder ZipGeocoder) *LocationService {
	return NewLocationService(config.NewZipDirectory(config.DefaultZipCodes), geocoder, testConfig(), testLogger())
}

func TestLocationService_CoordinatesFromDirectory(t *testing.T) {
	geocoder := &MockGeocoder{}
	svc := newLocationService(geocoder)

	z, err := svc.Coordinates(context.Background(), "90210")
	require.NoError(t, err)
	assert.Equal(t, "Beverly Hills", z.City)
	geocoder.AssertNotCalled(t, "GeocodeZip", mock.Anything)
}

func TestLocationService_CoordinatesFallsBackToGeocoder(t *testing.T) {
	geocoder := &MockGeocoder{}
	svc := newLocationService(geocoder)
	sf := config.ZipCode{ZipCode: "94103", City: "San Francisco", State: "CA", Latitude: 37.77, Longitude: -122.41}

	geocoder.On("GeocodeZip", "94103").Return(sf, nil).Once()
	geocoder.On("GeocodeZip", "00000").Return(config.ZipCode{}, errors.New("no result")).Once()

	z, err := svc.Coordinates(context.Background(), "94103")
	require.NoError(t, err)
	assert.Equal(t, sf, z)

	// Second lookup is served by the directory.
	_, err = svc.Coordinates(context.Background(), "94103")
	require.NoError(t, err)

	_, err = svc.Coordinates(context.Background(), "00000")
	assert.ErrorIs(t, err, models.ErrNotFound)
	geocoder.AssertExpectations(t)
}

func TestLocationService_CoordinatesWithoutGeocoder(t *testing.T) {
	svc := newLocationService(nil)
	_, err := svc.Coordinates(context.Background(), "94103")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocationService_ReverseGeocode(t *testing.T) {
	svc := newLocationService(nil)

	nearest, err := svc.ReverseGeocode(34.09, -118.40)
	require.NoError(t, err)
	assert.Contains(t, []string{"90210", "90211"}, nearest.ZipCode.ZipCode)

	_, err = svc.ReverseGeocode(0, 200)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	empty := NewLocationService(config.NewZipDirectory(nil), nil, testConfig(), testLogger())
	_, err = empty.ReverseGeocode(34, -118)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocationService_NearbyCities(t *testing.T) {
	svc := newLocationService(nil)

	nearby, err := svc.NearbyCities(34.0901, -118.4065, 0)
	require.NoError(t, err)
	require.NotEmpty(t, nearby)
	assert.Equal(t, "90210", nearby[0].ZipCode.ZipCode)
	for i := 1; i < len(nearby); i++ {
		assert.LessOrEqual(t, nearby[i-1].Distance, nearby[i].Distance)
		assert.Equal(t, "CA", nearby[i].State)
	}

	_, err = svc.NearbyCities(-91, 0, 10)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestLocationService_SearchAndStates(t *testing.T) {
	svc := newLocationService(nil)
	assert.Len(t, svc.SearchZipCodes("miami"), 2)
	assert.Len(t, svc.States(), 50)
}
