package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"velvetleash/server/config"
)

// ErrNoResult is returned when the service knows nothing about a zip code.
var ErrNoResult = errors.New("no geocoding result")

const cacheFileName = "geocode_cache.json"

// Geocoder resolves US zip codes through a Nominatim-compatible search API.
type Geocoder struct {
	logger    *logrus.Logger
	baseURL   string
	userAgent string
	cacheDir  string
	cache     map[string]config.ZipCode
	cacheLock sync.RWMutex
	client    *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker
}

// NewGeocoder builds a geocoder from the geocoding settings and loads its on-disk cache.
func NewGeocoder(cfg *config.Config, logger *logrus.Logger) *Geocoder {
	if err := os.MkdirAll(cfg.Geocoding.CacheDir, 0755); err != nil {
		logger.WithError(err).Warn("Could not create geocode cache directory")
	}

	g := &Geocoder{
		logger:    logger,
		baseURL:   strings.TrimRight(cfg.Geocoding.BaseURL, "/"),
		userAgent: cfg.Geocoding.UserAgent,
		cacheDir:  cfg.Geocoding.CacheDir,
		cache:     make(map[string]config.ZipCode),
		client:    &http.Client{Timeout: cfg.Geocoding.Timeout},
		// Nominatim's usage policy allows one request per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "nominatim",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoResult)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Geocoder circuit breaker changed state")
		},
	})

	g.loadCache()
	return g
}

func (g *Geocoder) cacheFile() string {
	return filepath.Join(g.cacheDir, cacheFileName)
}

func (g *Geocoder) loadCache() {
	data, err := os.ReadFile(g.cacheFile())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			g.logger.Warnf("Could not load geocode cache: %v", err)
		}
		return
	}

	if err := json.Unmarshal(data, &g.cache); err != nil {
		g.logger.Errorf("Failed to parse geocode cache: %v", err)
		return
	}

	g.logger.Infof("Loaded %d cached zip codes", len(g.cache))
}

func (g *Geocoder) saveCache() {
	g.cacheLock.RLock()
	data, err := json.Marshal(g.cache)
	g.cacheLock.RUnlock()
	if err != nil {
		g.logger.Errorf("Failed to marshal geocode cache: %v", err)
		return
	}

	if err := os.WriteFile(g.cacheFile(), data, 0644); err != nil {
		g.logger.Errorf("Failed to save geocode cache: %v", err)
	}
}

type nominatimResponse []struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		ISOState string `json:"ISO3166-2-lvl4"`
	} `json:"address"`
}

// GeocodeZip returns the location of a US zip code, from cache when possible.
func (g *Geocoder) GeocodeZip(ctx context.Context, zipCode string) (config.ZipCode, error) {
	g.cacheLock.RLock()
	cached, ok := g.cache[zipCode]
	g.cacheLock.RUnlock()
	if ok {
		g.logger.WithFields(logrus.Fields{
			"zip_code": zipCode,
			"source":   "cache",
		}).Debug("Found coordinates in cache")
		return cached, nil
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.lookup(ctx, zipCode)
	})
	if err != nil {
		return config.ZipCode{}, err
	}

	location := result.(config.ZipCode)
	g.cacheLock.Lock()
	g.cache[zipCode] = location
	g.cacheLock.Unlock()
	g.saveCache()

	return location, nil
}

func (g *Geocoder) lookup(ctx context.Context, zipCode string) (config.ZipCode, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return config.ZipCode{}, err
	}

	params := url.Values{
		"postalcode":     []string{zipCode},
		"countrycodes":   []string{"us"},
		"format":         []string{"json"},
		"limit":          []string{"1"},
		"addressdetails": []string{"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return config.ZipCode{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	g.logger.WithField("zip_code", zipCode).Info("Geocoding zip code with Nominatim")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithError(err).WithField("zip_code", zipCode).Error("Geocoding request failed")
		return config.ZipCode{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return config.ZipCode{}, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return config.ZipCode{}, fmt.Errorf("failed to read response: %w", err)
	}

	var result nominatimResponse
	if err := json.Unmarshal(body, &result); err != nil {
		g.logger.WithError(err).WithField("zip_code", zipCode).Error("Failed to parse response")
		return config.ZipCode{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result) == 0 {
		g.logger.WithField("zip_code", zipCode).Warn("No results found")
		return config.ZipCode{}, fmt.Errorf("%w for zip code %s", ErrNoResult, zipCode)
	}

	lat, err := strconv.ParseFloat(result[0].Lat, 64)
	if err != nil {
		return config.ZipCode{}, fmt.Errorf("invalid latitude %q: %w", result[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(result[0].Lon, 64)
	if err != nil {
		return config.ZipCode{}, fmt.Errorf("invalid longitude %q: %w", result[0].Lon, err)
	}

	addr := result[0].Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}
	if city == "" {
		city = addr.Village
	}
	state := strings.TrimPrefix(addr.ISOState, "US-")
	if state == "" {
		state = addr.State
	}

	location := config.ZipCode{ZipCode: zipCode, City: city, State: state, Latitude: lat, Longitude: lon}
	g.logger.WithFields(logrus.Fields{
		"zip_code":  zipCode,
		"latitude":  lat,
		"longitude": lon,
		"source":    "nominatim",
	}).Info("Successfully geocoded zip code")

	return location, nil
}
