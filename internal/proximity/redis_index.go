package proximity

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/models"
)

const (
	sitterGeoKey = "velvetleash:sitters"

	// Redis measures with a slightly larger Earth radius, so the prefilter searches a little wider
	// and the exact Haversine check decides.
	radiusSlackFactor = 1.01
	radiusSlackKm     = 0.05

	maxGeoLatitude = 85.05112878
)

// RedisIndex shortlists candidates with a Redis GEO set, then ranks the shortlist exactly.
type RedisIndex struct {
	client *redis.Client
	key    string
	logger *logrus.Logger
}

func NewRedisIndex(client *redis.Client, logger *logrus.Logger) *RedisIndex {
	return &RedisIndex{client: client, key: sitterGeoKey, logger: logger}
}

func member(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// indexable reports whether Redis can store the position. Sitters outside it are always scanned.
func indexable(s models.Sitter) bool {
	return models.ValidCoordinates(s.Latitude, s.Longitude) &&
		s.Latitude >= -maxGeoLatitude && s.Latitude <= maxGeoLatitude
}

func (r *RedisIndex) Index(ctx context.Context, sitters ...models.Sitter) error {
	if len(sitters) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, s := range sitters {
		if !indexable(s) {
			pipe.ZRem(ctx, r.key, member(s.ID))
			continue
		}
		pipe.GeoAdd(ctx, r.key, &redis.GeoLocation{
			Name:      member(s.ID),
			Longitude: s.Longitude,
			Latitude:  s.Latitude,
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index sitters: %w", err)
	}

	r.logger.WithField("count", len(sitters)).Debug("Indexed sitter positions")
	return nil
}

func (r *RedisIndex) Remove(ctx context.Context, sitterID uint) error {
	return r.client.ZRem(ctx, r.key, member(sitterID)).Err()
}

func (r *RedisIndex) Rank(ctx context.Context, origin orb.Point, radiusKm float64, candidates []models.Sitter) ([]models.RankedSitter, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	if !indexable(models.Sitter{Latitude: origin.Lat(), Longitude: origin.Lon()}) {
		return rank(origin, radiusKm, candidates), nil
	}

	locations, err := r.client.GeoRadius(ctx, r.key, origin.Lon(), origin.Lat(), &redis.GeoRadiusQuery{
		Radius: radiusKm*radiusSlackFactor + radiusSlackKm,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query sitter index: %w", err)
	}

	nearby := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		nearby[loc.Name] = struct{}{}
	}

	var outside []string
	for _, s := range candidates {
		if _, ok := nearby[member(s.ID)]; !ok && indexable(s) {
			outside = append(outside, member(s.ID))
		}
	}
	missing, err := r.missing(ctx, outside)
	if err != nil {
		return nil, err
	}

	shortlist := make([]models.Sitter, 0, len(locations)+len(missing))
	for _, s := range candidates {
		m := member(s.ID)
		if _, ok := nearby[m]; ok || !indexable(s) || missing[m] {
			shortlist = append(shortlist, s)
		}
	}

	r.logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"shortlist":  len(shortlist),
		"radius_km":  radiusKm,
	}).Debug("Ranked sitters with redis index")

	return rank(origin, radiusKm, shortlist), nil
}

// missing returns the members that have no position in the GEO set. Those are ranked by the
// exact scan until the index catches up.
func (r *RedisIndex) missing(ctx context.Context, members []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(members) == 0 {
		return out, nil
	}

	positions, err := r.client.GeoPos(ctx, r.key, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query sitter index: %w", err)
	}
	for i, pos := range positions {
		if pos == nil && i < len(members) {
			out[members[i]] = true
		}
	}

	if len(out) > 0 {
		r.logger.WithField("count", len(out)).Warn("Sitters missing from proximity index")
	}
	return out, nil
}
