package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"velvetleash/server/config"
	"velvetleash/server/internal/api"
	"velvetleash/server/internal/database"
	"velvetleash/server/internal/geocoding"
	"velvetleash/server/internal/processor"
	"velvetleash/server/internal/proximity"
	"velvetleash/server/internal/queue"
	"velvetleash/server/internal/scheduler"
	"velvetleash/server/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Path, cfg.Database.DSN)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	if cfg.Database.Seed {
		seeded, err := db.Seed(context.Background(), time.Now())
		if err != nil {
			logger.WithError(err).Fatal("Failed to seed database")
		}
		if seeded {
			logger.Info("Seeded empty database with demo data")
		}
	}

	zips, err := config.LoadZipDirectory(cfg.ZipDirectoryPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load zip code directory")
	}

	// Left as a nil interface when disabled so the location service skips remote lookups.
	var geocoder service.ZipGeocoder
	if cfg.Geocoding.Enabled {
		geocoder = geocoding.NewGeocoder(cfg, logger)
	}

	var ranker proximity.Ranker = proximity.NewBruteForce()
	if cfg.Proximity.Index == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Proximity.RedisAddr,
			Password: cfg.Proximity.RedisPassword,
			DB:       cfg.Proximity.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.WithError(err).Fatal("Failed to connect to redis")
		}
		ranker = proximity.NewRedisIndex(client, logger)
	}

	events := queue.NewEventQueue(cfg.Notifications.QueueSize, logger)
	notifier := processor.NewNotificationProcessor(db, events, cfg, logger)
	notifier.Start()
	events.Start()

	sitters := service.NewSitterService(db, ranker, zips, cfg, logger)
	boarding := service.NewBoardingService(db, events, logger)

	if err := sitters.Reindex(context.Background()); err != nil {
		logger.WithError(err).Error("Failed to build proximity index")
	}

	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.NewScheduler(boarding, cfg.Scheduler.Interval, logger)
		jobs.Start()
	}

	handler := api.NewHandler(api.Services{
		Sitters:       sitters,
		Boarding:      boarding,
		Pets:          service.NewPetService(db, logger),
		Users:         service.NewUserService(db, logger),
		Locations:     service.NewLocationService(zips, geocoder, cfg, logger),
		Notifications: service.NewNotificationService(db),
		Health:        db,
	}, logger)

	router, err := api.NewRouter(handler, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}

	if jobs != nil {
		jobs.Stop()
	}
	if err := events.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close event queue")
	}
	notifier.Stop()
}
