package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
)

func newTestCatalog(t *testing.T) (*SQLiteCatalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	catalog, err := NewSQLiteCatalog(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog, path
}

func TestNewSQLiteCatalog_Seeds(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	ctx := context.Background()

	samples, err := catalog.ListSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, len(DefaultSamples))
	assert.Equal(t, DefaultSamples, samples)

	zones, err := catalog.ListZones(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ServiceZone{DefaultZone}, zones)
	assert.True(t, zones[0].Contains(domain.DefaultLocation().Coordinates()))
}

func TestNewSQLiteCatalog_ReopenDoesNotReseed(t *testing.T) {
	catalog, path := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.AddZone(ctx, domain.ServiceZone{Name: "Pune", Latitude: 18.52, Longitude: 73.85, RadiusKm: 20}))
	require.NoError(t, catalog.Close())

	reopened, err := NewSQLiteCatalog(path)
	require.NoError(t, err)
	defer reopened.Close()

	samples, err := reopened.ListSamples(ctx)
	require.NoError(t, err)
	assert.Len(t, samples, len(DefaultSamples))

	zones, err := reopened.ListZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 2)
}

func TestGetSample(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	sample, err := catalog.GetSample(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Cookie Hamper", sample.Name)
	assert.Equal(t, "Packed 3 hrs ago", sample.Badge)

	_, err = catalog.GetSample(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}

func TestAddZone(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	ctx := context.Background()
	pune := domain.ServiceZone{Name: "Pune", Latitude: 18.5204, Longitude: 73.8567, RadiusKm: 20}

	require.NoError(t, catalog.AddZone(ctx, pune))

	zones, err := catalog.ListZones(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ServiceZone{DefaultZone, pune}, zones)

	err = catalog.AddZone(ctx, pune)
	assert.ErrorIs(t, err, domain.ErrZoneExists)
}

func TestAddZone_Invalid(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	tests := []struct {
		name string
		zone domain.ServiceZone
	}{
		{"blank name", domain.ServiceZone{Name: " ", Latitude: 1, Longitude: 1, RadiusKm: 1}},
		{"bad latitude", domain.ServiceZone{Name: "X", Latitude: 95, Longitude: 1, RadiusKm: 1}},
		{"zero radius", domain.ServiceZone{Name: "X", Latitude: 1, Longitude: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, catalog.AddZone(context.Background(), tt.zone), domain.ErrInvalidZone)
		})
	}
}
