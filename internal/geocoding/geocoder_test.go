package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"velvetleash/server/config"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) (*Geocoder, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Geocoding.BaseURL = server.URL
	cfg.Geocoding.UserAgent = "test-agent"
	cfg.Geocoding.CacheDir = t.TempDir()
	cfg.Geocoding.Timeout = time.Second

	g := NewGeocoder(cfg, logrus.New())
	g.limiter = rate.NewLimiter(rate.Inf, 1)
	return g, &calls
}

func TestGeocodeZip(t *testing.T) {
	g, calls := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "94103", r.URL.Query().Get("postalcode"))
		assert.Equal(t, "us", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"37.7725","lon":"-122.4091","address":{"city":"San Francisco","state":"California","ISO3166-2-lvl4":"US-CA"}}]`))
	})

	got, err := g.GeocodeZip(context.Background(), "94103")
	require.NoError(t, err)
	assert.Equal(t, config.ZipCode{ZipCode: "94103", City: "San Francisco", State: "CA", Latitude: 37.7725, Longitude: -122.4091}, got)

	again, err := g.GeocodeZip(context.Background(), "94103")
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestGeocodeZip_CachePersists(t *testing.T) {
	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"40.0","lon":"-75.0","address":{"town":"Springfield","state":"Pennsylvania"}}]`))
	})
	_, err := g.GeocodeZip(context.Background(), "19064")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Geocoding.CacheDir = g.cacheDir
	reloaded := NewGeocoder(cfg, logrus.New())

	got, err := reloaded.GeocodeZip(context.Background(), "19064")
	require.NoError(t, err)
	assert.Equal(t, "Springfield", got.City)
	assert.Equal(t, "Pennsylvania", got.State)
}

func TestGeocodeZip_NoResult(t *testing.T) {
	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := g.GeocodeZip(context.Background(), "00000")
	assert.ErrorIs(t, err, ErrNoResult)
	assert.Equal(t, gobreaker.StateClosed, g.breaker.State())
}

func TestGeocodeZip_BreakerOpensOnFailures(t *testing.T) {
	g, calls := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 3; i++ {
		_, err := g.GeocodeZip(context.Background(), "12345")
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, g.breaker.State())

	_, err := g.GeocodeZip(context.Background(), "12345")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}
