package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5250", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10.0, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 50.0, cfg.Search.NearbyCitiesRadiusKm)
	assert.Equal(t, "memory", cfg.Proximity.Index)
	assert.Equal(t, time.Hour, cfg.Scheduler.Interval)
	assert.Equal(t, 2*time.Second, cfg.Notifications.RetryDelay)
	assert.NotEmpty(t, cfg.Geocoding.CacheDir)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SEARCH_DEFAULT_RADIUS_KM", "25.5")
	t.Setenv("PROXIMITY_INDEX", "redis")
	t.Setenv("SCHEDULER_INTERVAL", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 25.5, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, "redis", cfg.Proximity.Index)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.Interval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Database.Driver = "postgres" }},
		{name: "unknown index", mutate: func(c *Config) { c.Proximity.Index = "rtree" }},
		{name: "zero radius", mutate: func(c *Config) { c.Search.DefaultRadiusKm = 0 }},
		{name: "zero queue", mutate: func(c *Config) { c.Notifications.QueueSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, validConfig().Validate())
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Proximity.Index = "memory"
	cfg.Search.DefaultRadiusKm = 10
	cfg.Notifications.QueueSize = 10
	return cfg
}
