package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
	portsmocks "github.com/renato0307/freshcart/internal/ports/mocks"
)

func TestGeocodeCacheKey_RoundsToFourDecimals(t *testing.T) {
	a := GeocodeCacheKey(domain.Coordinates{Latitude: 12.91001, Longitude: 77.60999})
	b := GeocodeCacheKey(domain.Coordinates{Latitude: 12.90999, Longitude: 77.61001})

	assert.Equal(t, "reverse:12.9100:77.6100", a)
	assert.Equal(t, a, b)
}

func TestCachedGeocoder_Hit(t *testing.T) {
	next := portsmocks.NewMockGeocodeService(t)
	cache := portsmocks.NewMockGeocodeCache(t)
	coords := domain.Coordinates{Latitude: 12.91, Longitude: 77.61}
	cached := []domain.AddressCandidate{{Name: "Cached"}}

	cache.EXPECT().Get(mock.Anything, "reverse:12.9100:77.6100").Return(cached, true, nil)

	got, err := NewCachedGeocoder(next, cache).Reverse(context.Background(), coords)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCachedGeocoder_MissStoresResult(t *testing.T) {
	next := portsmocks.NewMockGeocodeService(t)
	cache := portsmocks.NewMockGeocodeCache(t)
	coords := domain.Coordinates{Latitude: 12.91, Longitude: 77.61}
	fresh := []domain.AddressCandidate{{Name: "Fresh"}}

	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	next.EXPECT().Reverse(mock.Anything, coords).Return(fresh, nil)
	cache.EXPECT().Set(mock.Anything, "reverse:12.9100:77.6100", fresh).Return(nil)

	got, err := NewCachedGeocoder(next, cache).Reverse(context.Background(), coords)

	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestCachedGeocoder_CacheFailuresAreBypassed(t *testing.T) {
	next := portsmocks.NewMockGeocodeService(t)
	cache := portsmocks.NewMockGeocodeCache(t)
	coords := domain.Coordinates{Latitude: 12.91, Longitude: 77.61}
	fresh := []domain.AddressCandidate{{Name: "Fresh"}}

	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, errors.New("connection refused"))
	next.EXPECT().Reverse(mock.Anything, coords).Return(fresh, nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	got, err := NewCachedGeocoder(next, cache).Reverse(context.Background(), coords)

	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestCachedGeocoder_ForwardAndErrorsPassThrough(t *testing.T) {
	next := portsmocks.NewMockGeocodeService(t)
	cache := portsmocks.NewMockGeocodeCache(t)
	coords := domain.Coordinates{Latitude: 1, Longitude: 2}

	next.EXPECT().Forward(mock.Anything, "BTM").Return([]domain.Coordinates{coords}, nil)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	next.EXPECT().Reverse(mock.Anything, coords).Return(nil, errors.New("offline"))

	geocoder := NewCachedGeocoder(next, cache)

	matches, err := geocoder.Forward(context.Background(), "BTM")
	require.NoError(t, err)
	assert.Equal(t, []domain.Coordinates{coords}, matches)

	_, err = geocoder.Reverse(context.Background(), coords)
	assert.Error(t, err)
}
