package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"velvetleash/server/config"
	"velvetleash/server/internal/database"
	"velvetleash/server/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Search.DefaultRadiusKm = 10
	cfg.Search.NearbyCitiesRadiusKm = 50
	return cfg
}

func newTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return db
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(id uint) *uint { return &id }

func addUser(t *testing.T, db *database.Database, email string) *models.User {
	t.Helper()
	u := &models.User{Username: email, Email: email, PasswordHash: "x"}
	require.NoError(t, db.CreateUser(context.Background(), u))
	return u
}

func addSitter(t *testing.T, db *database.Database, s models.Sitter) *models.Sitter {
	t.Helper()
	require.NoError(t, db.CreateSitter(context.Background(), &s))
	return &s
}

type recorder struct {
	mu     sync.Mutex
	events []models.BoardingEvent
}

func (r *recorder) Publish(e models.BoardingEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []models.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
