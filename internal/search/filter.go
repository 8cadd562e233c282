// Package search narrows sitter candidates with pure functions over an immutable filter value.
package search

import (
	"github.com/paulmach/orb"

	"velvetleash/server/internal/geometry"
	"velvetleash/server/internal/models"
)

type optionalBool struct {
	value bool
	set   bool
}

// SitterFilter describes a sitter search. It is a value: every With method returns a modified copy.
type SitterFilter struct {
	zipCode     string
	hasZipCode  bool
	acceptsDogs optionalBool
	acceptsCats optionalBool
	window      models.DateRange
	hasWindow   bool
	origin      orb.Point
	radiusKm    float64
	hasOrigin   bool
}

func NewSitterFilter() SitterFilter {
	return SitterFilter{}
}

// WithZipCode requires an exact, case-sensitive zip match. An empty zip clears the criterion.
func (f SitterFilter) WithZipCode(zip string) SitterFilter {
	f.zipCode = zip
	f.hasZipCode = zip != ""
	return f
}

func (f SitterFilter) WithAcceptsDogs(v bool) SitterFilter {
	f.acceptsDogs = optionalBool{value: v, set: true}
	return f
}

func (f SitterFilter) WithAcceptsCats(v bool) SitterFilter {
	f.acceptsCats = optionalBool{value: v, set: true}
	return f
}

// WithWindow restricts results to sitters free for the whole of r.
func (f SitterFilter) WithWindow(r models.DateRange) SitterFilter {
	f.window = r
	f.hasWindow = true
	return f
}

// WithOrigin asks for proximity ranking around lat/lon. radiusKm <= 0 means the ranker's default.
func (f SitterFilter) WithOrigin(lat, lon, radiusKm float64) SitterFilter {
	f.origin = geometry.NewPoint(lat, lon)
	f.radiusKm = radiusKm
	f.hasOrigin = true
	return f
}

func (f SitterFilter) ZipCode() (string, bool) { return f.zipCode, f.hasZipCode }

func (f SitterFilter) AcceptsDogs() (bool, bool) { return f.acceptsDogs.value, f.acceptsDogs.set }

func (f SitterFilter) AcceptsCats() (bool, bool) { return f.acceptsCats.value, f.acceptsCats.set }

func (f SitterFilter) Window() (models.DateRange, bool) { return f.window, f.hasWindow }

func (f SitterFilter) Origin() (orb.Point, float64, bool) { return f.origin, f.radiusKm, f.hasOrigin }
