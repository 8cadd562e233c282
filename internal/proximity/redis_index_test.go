package proximity

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvetleash/server/internal/geometry"
	"velvetleash/server/internal/models"
)

func newTestIndex(t *testing.T) (*RedisIndex, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisIndex(client, logrus.New()), mr
}

func TestRedisIndex_MatchesBruteForce(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	candidates := []models.Sitter{northOf(1, 3), northOf(2, 15), northOf(3, 7), northOf(4, 9.99)}
	require.NoError(t, idx.Index(ctx, candidates...))

	ranked, err := idx.Rank(ctx, origin, 10, candidates)
	require.NoError(t, err)

	expected, err := NewBruteForce().Rank(ctx, origin, 10, candidates)
	require.NoError(t, err)
	assert.Equal(t, expected, ranked)
	assert.Equal(t, []float64{3, 7, 9.99}, distances(ranked))
}

func TestRedisIndex_OnlyRanksCandidates(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, northOf(1, 2), northOf(2, 4)))

	ranked, err := idx.Rank(ctx, origin, 10, []models.Sitter{northOf(2, 4)})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, uint(2), ranked[0].Sitter.ID)
}

func TestRedisIndex_Remove(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	s := northOf(1, 2)
	require.NoError(t, idx.Index(ctx, s))
	require.NoError(t, idx.Remove(ctx, 1))

	positions, err := idx.client.GeoPos(ctx, sitterGeoKey, "1").Result()
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Nil(t, positions[0])
}

func TestRedisIndex_ScansSittersMissingFromIndex(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	candidates := []models.Sitter{northOf(1, 3), northOf(2, 5), northOf(3, 12)}
	require.NoError(t, idx.Index(ctx, candidates[0]))

	ranked, err := idx.Rank(ctx, origin, 10, candidates)
	require.NoError(t, err)

	expected, err := NewBruteForce().Rank(ctx, origin, 10, candidates)
	require.NoError(t, err)
	assert.Equal(t, expected, ranked)
	assert.Equal(t, []float64{3, 5}, distances(ranked))
}

func TestRedisIndex_IndexedPositionOutsideRadiusStaysOut(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	far := northOf(1, 40)
	require.NoError(t, idx.Index(ctx, far))

	ranked, err := idx.Rank(ctx, origin, 10, []models.Sitter{far})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRedisIndex_ScansUnindexablePositions(t *testing.T) {
	idx, _ := newTestIndex(t)
	ctx := context.Background()

	polar := models.Sitter{ID: 1, IsAvailable: true, Latitude: 89.9, Longitude: 0}
	require.NoError(t, idx.Index(ctx, polar))

	ranked, err := idx.Rank(ctx, geometry.NewPoint(89.95, 0), 10, []models.Sitter{polar})
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestRedisIndex_ConnectionError(t *testing.T) {
	idx, mr := newTestIndex(t)
	mr.Close()

	_, err := idx.Rank(context.Background(), origin, 10, []models.Sitter{northOf(1, 1)})
	assert.Error(t, err)
}
