package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
	portsmocks "github.com/renato0307/freshcart/internal/ports/mocks"
)

// deviceMocks satisfies ports.Device with one mock per port
type deviceMocks struct {
	*portsmocks.MockPermissionService
	*portsmocks.MockPositionService
	*portsmocks.MockGeocodeService
	*portsmocks.MockSettingsLauncher
}

func newDeviceMocks(t *testing.T) deviceMocks {
	return deviceMocks{
		MockPermissionService: portsmocks.NewMockPermissionService(t),
		MockPositionService:   portsmocks.NewMockPositionService(t),
		MockGeocodeService:    portsmocks.NewMockGeocodeService(t),
		MockSettingsLauncher:  portsmocks.NewMockSettingsLauncher(t),
	}
}

func TestNewSession_UsesGeocodeCache(t *testing.T) {
	dev := newDeviceMocks(t)
	cache := portsmocks.NewMockGeocodeCache(t)
	clock := newFakeClock()
	coords := domain.Coordinates{Latitude: 12.9352, Longitude: 77.6245}

	cache.EXPECT().Get(mock.Anything, "reverse:12.9352:77.6245").
		Return([]domain.AddressCandidate{{Name: "Koramangala", City: "Bengaluru"}}, true, nil)

	session := NewSession(SessionDeps{
		Catalog:        portsmocks.NewMockSampleCatalog(t),
		Clock:          clock,
		Device:         dev,
		GeocodeCache:   cache,
		OTPGateway:     portsmocks.NewMockOTPGateway(t),
		Serviceability: AlwaysServiceable{},
	})

	res := session.Location.ResolveFromMapPoint(context.Background(), coords)

	require.True(t, res.Committed)
	loc, ok := session.Store.Location()
	require.True(t, ok)
	assert.Equal(t, "Koramangala", loc.Address)
}

func TestSession_Close(t *testing.T) {
	dev := newDeviceMocks(t)
	session := NewSession(SessionDeps{
		Catalog:    portsmocks.NewMockSampleCatalog(t),
		Device:     dev,
		OTPGateway: portsmocks.NewMockOTPGateway(t),
	})
	require.NoError(t, session.Store.SetLocation(domain.DefaultLocation()))
	id := session.Store.ID()

	session.Close()

	_, ok := session.Store.Location()
	assert.False(t, ok)
	assert.NotEqual(t, id, session.Store.ID())
}
