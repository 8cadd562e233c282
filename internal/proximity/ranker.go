// Package proximity ranks sitter candidates by great-circle distance from a query point.
package proximity

import (
	"context"
	"sort"

	"github.com/paulmach/orb"

	"velvetleash/server/internal/geometry"
	"velvetleash/server/internal/models"
)

const DefaultRadiusKm = 10.0

// Ranker keeps candidates within radiusKm of origin, nearest first.
// Candidates must already be limited to sitters marked available.
type Ranker interface {
	Rank(ctx context.Context, origin orb.Point, radiusKm float64, candidates []models.Sitter) ([]models.RankedSitter, error)
}

// Indexer is implemented by rankers that keep their own copy of sitter positions.
type Indexer interface {
	Index(ctx context.Context, sitters ...models.Sitter) error
	Remove(ctx context.Context, sitterID uint) error
}

// BruteForce computes the distance to every candidate.
type BruteForce struct{}

func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

func (b *BruteForce) Rank(_ context.Context, origin orb.Point, radiusKm float64, candidates []models.Sitter) ([]models.RankedSitter, error) {
	return rank(origin, radiusKm, candidates), nil
}

// rank filters by radius and sorts ascending. Equal distances keep their input order.
func rank(origin orb.Point, radiusKm float64, candidates []models.Sitter) []models.RankedSitter {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	ranked := make([]models.RankedSitter, 0, len(candidates))
	for _, s := range candidates {
		d := geometry.Distance(origin, geometry.NewPoint(s.Latitude, s.Longitude))
		if d <= radiusKm {
			ranked = append(ranked, models.RankedSitter{Sitter: s, DistanceKm: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// Sitters drops the distances from a ranked result.
func Sitters(ranked []models.RankedSitter) []models.Sitter {
	out := make([]models.Sitter, len(ranked))
	for i, r := range ranked {
		out[i] = r.Sitter
	}
	return out
}
