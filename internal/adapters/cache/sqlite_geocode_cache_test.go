package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"fleet-eta-service/internal/domain"
)

func testSqliteCache(t *testing.T) *SqliteGeocodeCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSqliteSchema(db))
	return NewSqliteGeocodeCache(db)
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := testSqliteCache(t)
	ctx := context.Background()

	require.NoError(t, c.PutMany(ctx, map[string]domain.GeoPoint{
		"Dallas, TX, USA": {Lat: 32.7767, Lng: -96.797},
	}))

	got, err := c.GetMany(ctx, []string{"Dallas, TX, USA", "Chicago, IL, USA"})
	require.NoError(t, err)

	// Only the hit comes back; the miss is simply absent.
	require.Len(t, got, 1)
	assert.InDelta(t, 32.7767, got["Dallas, TX, USA"].Lat, 0.000001)
	assert.InDelta(t, -96.797, got["Dallas, TX, USA"].Lng, 0.000001)
}

func TestSqliteGeocodeCacheUpsert(t *testing.T) {
	c := testSqliteCache(t)
	ctx := context.Background()

	require.NoError(t, c.PutMany(ctx, map[string]domain.GeoPoint{
		"Tulsa, OK, USA": {Lat: 1, Lng: 1},
	}))
	require.NoError(t, c.PutMany(ctx, map[string]domain.GeoPoint{
		"Tulsa, OK, USA": {Lat: 36.154, Lng: -95.9928},
	}))

	got, err := c.GetMany(ctx, []string{"Tulsa, OK, USA"})
	require.NoError(t, err)
	assert.InDelta(t, 36.154, got["Tulsa, OK, USA"].Lat, 0.000001)
}

func TestSqliteGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := testSqliteCache(t)

	err := c.PutMany(context.Background(), map[string]domain.GeoPoint{
		" ": {Lat: 1, Lng: 1},
	})
	require.Error(t, err)
}
