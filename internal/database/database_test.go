package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvetleash/server/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return db
}

func day(s string) time.Time {
	t, _ := time.Parse(models.DateLayout, s)
	return t
}

func createUser(t *testing.T, db *Database, email string) *models.User {
	t.Helper()
	user := &models.User{Username: email, Email: email, PasswordHash: "x"}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func createSitter(t *testing.T, db *Database, s models.Sitter) *models.Sitter {
	t.Helper()
	require.NoError(t, db.CreateSitter(context.Background(), &s))
	return &s
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := newTestDatabase(t)
	assert.NoError(t, db.RunMigrations())
	assert.NoError(t, db.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "", "")
	assert.Error(t, err)
}

func TestSitters(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	alice := createSitter(t, db, models.Sitter{Name: "Alice", ZipCode: "90210", IsAvailable: true, PricePerNight: 50})
	createSitter(t, db, models.Sitter{Name: "Bob", ZipCode: "10001", IsAvailable: false})

	all, err := db.ListSitters(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := db.ListAvailableSitters(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Alice", available[0].Name)

	alice.PricePerNight = 55
	require.NoError(t, db.UpdateSitter(ctx, alice))
	got, err := db.GetSitter(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 55.0, got.PricePerNight)

	_, err = db.GetSitter(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBoardingRequests(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	user := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	sitter := createSitter(t, db, models.Sitter{Name: "Alice", IsAvailable: true, PricePerNight: 50})
	pet := &models.Pet{Name: "Max", Type: models.PetTypeDog, UserID: user.ID}
	require.NoError(t, db.CreatePet(ctx, pet))

	request := &models.BoardingRequest{
		UserID: user.ID, SitterID: &sitter.ID, PetID: &pet.ID, Status: models.StatusPending,
		StartDate: day("2025-07-01"), EndDate: day("2025-07-10"), TotalPrice: 500,
	}
	require.NoError(t, db.CreateBoardingRequest(ctx, request))
	require.NoError(t, db.CreateBoardingRequest(ctx, &models.BoardingRequest{
		UserID: other.ID, Status: models.StatusPending, StartDate: day("2025-08-01"), EndDate: day("2025-08-02"),
	}))

	got, err := db.GetBoardingRequest(ctx, request.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Sitter)
	require.NotNil(t, got.Pet)
	assert.Equal(t, "Alice", got.Sitter.Name)
	assert.Equal(t, "Max", got.Pet.Name)
	assert.Equal(t, "2025-07-01", got.StartDate.UTC().Format(models.DateLayout))

	mine, err := db.ListBoardingRequests(ctx, &user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := db.ListBoardingRequests(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got.Status = models.StatusAccepted
	require.NoError(t, db.SaveBoardingRequest(ctx, got))
	reloaded, err := db.GetBoardingRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, reloaded.Status)

	require.NoError(t, db.DeleteBoardingRequest(ctx, request.ID))
	assert.ErrorIs(t, db.DeleteBoardingRequest(ctx, request.ID), models.ErrNotFound)
	_, err = db.GetBoardingRequest(ctx, request.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindBlockingRequests(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	user := createUser(t, db, "owner@example.com")
	a := createSitter(t, db, models.Sitter{Name: "A", IsAvailable: true})
	b := createSitter(t, db, models.Sitter{Name: "B", IsAvailable: true})

	for _, r := range []models.BoardingRequest{
		{UserID: user.ID, SitterID: &a.ID, Status: models.StatusPending, StartDate: day("2025-07-01"), EndDate: day("2025-07-10")},
		{UserID: user.ID, SitterID: &b.ID, Status: models.StatusRejected, StartDate: day("2025-07-01"), EndDate: day("2025-07-10")},
		{UserID: user.ID, Status: models.StatusPending, StartDate: day("2025-07-01"), EndDate: day("2025-07-10")},
	} {
		r := r
		require.NoError(t, db.CreateBoardingRequest(ctx, &r))
	}

	overlap := models.DateRange{Start: day("2025-07-05"), End: day("2025-07-06")}
	found, err := db.FindBlockingRequests(ctx, overlap, nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, *found[0].SitterID)

	found, err = db.FindBlockingRequests(ctx, overlap, &b.ID)
	require.NoError(t, err)
	assert.Empty(t, found)

	edge := models.DateRange{Start: day("2025-07-10"), End: day("2025-07-10")}
	found, err = db.FindBlockingRequests(ctx, edge, &a.ID)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	after := models.DateRange{Start: day("2025-07-11"), End: day("2025-07-15")}
	found, err = db.FindBlockingRequests(ctx, after, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListElapsedAccepted(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	user := createUser(t, db, "owner@example.com")

	for _, r := range []models.BoardingRequest{
		{UserID: user.ID, Status: models.StatusAccepted, StartDate: day("2025-07-01"), EndDate: day("2025-07-03")},
		{UserID: user.ID, Status: models.StatusAccepted, StartDate: day("2025-07-01"), EndDate: day("2025-07-05")},
		{UserID: user.ID, Status: models.StatusPending, StartDate: day("2025-07-01"), EndDate: day("2025-07-02")},
	} {
		r := r
		require.NoError(t, db.CreateBoardingRequest(ctx, &r))
	}

	elapsed, err := db.ListElapsedAccepted(ctx, time.Date(2025, 7, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, elapsed, 1)
	assert.Equal(t, "2025-07-03", elapsed[0].EndDate.UTC().Format(models.DateLayout))
}

func TestPets(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	owner := createUser(t, db, "owner@example.com")

	for _, name := range []string{"Rex", "Bella", "Max"} {
		require.NoError(t, db.CreatePet(ctx, &models.Pet{Name: name, Type: models.PetTypeDog, UserID: owner.ID}))
	}

	pets, err := db.ListPets(ctx, &owner.ID)
	require.NoError(t, err)
	require.Len(t, pets, 3)
	assert.Equal(t, []string{"Bella", "Max", "Rex"}, []string{pets[0].Name, pets[1].Name, pets[2].Name})

	pets[0].MedicalConditions = "None"
	require.NoError(t, db.UpdatePet(ctx, &pets[0]))
	got, err := db.GetPet(ctx, pets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "None", got.MedicalConditions)

	require.NoError(t, db.DeletePet(ctx, got.ID))
	assert.ErrorIs(t, db.DeletePet(ctx, got.ID), models.ErrNotFound)

	err = db.CreatePet(ctx, &models.Pet{Name: "Ghost", UserID: 999})
	assert.Error(t, err, "foreign keys must be enforced")
}

func TestUsers(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	user := createUser(t, db, "john@example.com")

	found, err := db.GetUserByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := db.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = db.CreateUser(ctx, &models.User{Username: "dup", Email: "john@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	_, err = db.GetUser(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNotifications(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, db.SaveNotifications(ctx, []models.Notification{
		{UserID: 1, Type: models.NotificationBoardingCreated, Title: "a", CreatedAt: time.Now().Add(-time.Minute)},
		{UserID: 1, Type: models.NotificationStatusChanged, Title: "b", CreatedAt: time.Now()},
		{UserID: 2, Type: models.NotificationStatusChanged, Title: "c"},
	}))
	require.NoError(t, db.SaveNotifications(ctx, nil))

	list, err := db.ListNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Title)

	unread, err := db.CountUnreadNotifications(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, db.MarkNotificationRead(ctx, list[0].ID))
	unread, _ = db.CountUnreadNotifications(ctx, 1)
	assert.Equal(t, int64(1), unread)

	updated, err := db.MarkAllNotificationsRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	require.NoError(t, db.DeleteNotification(ctx, list[1].ID))
	assert.ErrorIs(t, db.DeleteNotification(ctx, list[1].ID), models.ErrNotFound)
	assert.ErrorIs(t, db.MarkNotificationRead(ctx, 999), models.ErrNotFound)
}

func TestSeed(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	seeded, err := db.Seed(ctx, now)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = db.Seed(ctx, now)
	require.NoError(t, err)
	assert.False(t, seeded)

	sitters, err := db.ListSitters(ctx)
	require.NoError(t, err)
	assert.Len(t, sitters, 3)

	requests, err := db.ListBoardingRequests(ctx, nil)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, 400.0, requests[0].TotalPrice)
	assert.Equal(t, models.StatusPending, requests[0].Status)
}
