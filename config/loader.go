package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"velvetleash/server/internal/geometry"
)

// zipDirectoryFile is the on-disk layout read by LoadZipDirectory.
type zipDirectoryFile struct {
	ZipCodes []ZipCode `json:"zipCodes"`
}

// ZipDirectory is an in-memory zip code table safe for concurrent use.
type ZipDirectory struct {
	mu      sync.RWMutex
	entries []ZipCode
	byCode  map[string]int
}

// NearbyZip is a directory entry with its distance from a query point.
type NearbyZip struct {
	ZipCode
	Distance float64 `json:"distance"`
}

func NewZipDirectory(entries []ZipCode) *ZipDirectory {
	d := &ZipDirectory{byCode: make(map[string]int)}
	for _, z := range entries {
		d.put(z)
	}
	return d
}

// LoadZipDirectory reads the directory from a JSON file. An empty path gives the built-in directory.
func LoadZipDirectory(path string) (*ZipDirectory, error) {
	if path == "" {
		return NewZipDirectory(DefaultZipCodes), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip directory: %w", err)
	}

	var file zipDirectoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse zip directory: %w", err)
	}
	if len(file.ZipCodes) == 0 {
		return nil, fmt.Errorf("zip directory %s has no entries", absPath)
	}

	return NewZipDirectory(file.ZipCodes), nil
}

func (d *ZipDirectory) put(z ZipCode) {
	if i, ok := d.byCode[z.ZipCode]; ok {
		d.entries[i] = z
		return
	}
	d.byCode[z.ZipCode] = len(d.entries)
	d.entries = append(d.entries, z)
}

// Add inserts or replaces an entry.
func (d *ZipDirectory) Add(z ZipCode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.put(z)
}

func (d *ZipDirectory) Lookup(code string) (ZipCode, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.byCode[code]
	if !ok {
		return ZipCode{}, false
	}
	return d.entries[i], true
}

func (d *ZipDirectory) All() []ZipCode {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]ZipCode, len(d.entries))
	copy(out, d.entries)
	return out
}

// Search matches a zip code substring, or a case-insensitive city or state substring.
func (d *ZipDirectory) Search(query string) []ZipCode {
	if query == "" {
		return d.All()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]ZipCode, 0)
	for _, z := range d.entries {
		if strings.Contains(z.ZipCode, query) ||
			strings.Contains(strings.ToLower(z.City), q) ||
			strings.Contains(strings.ToLower(z.State), q) {
			out = append(out, z)
		}
	}
	return out
}

// Within returns entries no further than radiusKm from lat/lon, nearest first.
func (d *ZipDirectory) Within(lat, lon, radiusKm float64) []NearbyZip {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]NearbyZip, 0)
	for _, z := range d.entries {
		dist := geometry.DistanceKm(lat, lon, z.Latitude, z.Longitude)
		if dist <= radiusKm {
			out = append(out, NearbyZip{ZipCode: z, Distance: dist})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

// Nearest returns the entry closest to lat/lon.
func (d *ZipDirectory) Nearest(lat, lon float64) (NearbyZip, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var best NearbyZip
	found := false
	for _, z := range d.entries {
		dist := geometry.DistanceKm(lat, lon, z.Latitude, z.Longitude)
		if !found || dist < best.Distance {
			best = NearbyZip{ZipCode: z, Distance: dist}
			found = true
		}
	}
	return best, found
}
