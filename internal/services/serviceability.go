package services

import (
	"context"
	"fmt"

	"github.com/renato0307/freshcart/internal/config"
	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// AlwaysServiceable offers delivery everywhere
type AlwaysServiceable struct{}

// IsServiceable always returns true
func (AlwaysServiceable) IsServiceable(context.Context, domain.Coordinates) bool { return true }

// RadiusServiceability offers delivery within a fixed distance of a reference point
type RadiusServiceability struct {
	Center   domain.Coordinates
	RadiusKm float64
}

// IsServiceable reports whether coords lie within the radius
func (r RadiusServiceability) IsServiceable(_ context.Context, coords domain.Coordinates) bool {
	return domain.DistanceKm(r.Center, coords) <= r.RadiusKm
}

// ZoneServiceability offers delivery inside any zone of the catalog
type ZoneServiceability struct {
	zones ports.ZoneRepository
}

// NewZoneServiceability creates a checker backed by the zone repository
func NewZoneServiceability(zones ports.ZoneRepository) *ZoneServiceability {
	return &ZoneServiceability{zones: zones}
}

// IsServiceable reports whether coords lie inside a service zone.
// Lookup failures count as not serviceable.
func (z *ZoneServiceability) IsServiceable(ctx context.Context, coords domain.Coordinates) bool {
	zones, err := z.zones.ListZones(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list service zones", "error", err)
		return false
	}

	for _, zone := range zones {
		if zone.Contains(coords) {
			logging.Logger.Debug("Point inside service zone", "zone", zone.Name, "coords", coords.String())
			return true
		}
	}
	return false
}

var (
	_ ports.ServiceabilityChecker = AlwaysServiceable{}
	_ ports.ServiceabilityChecker = RadiusServiceability{}
	_ ports.ServiceabilityChecker = (*ZoneServiceability)(nil)
)

// NewServiceabilityChecker builds the checker for a policy name.
// The radius policy is centred on the default location.
func NewServiceabilityChecker(policy string, radiusKm float64, zones ports.ZoneRepository) (ports.ServiceabilityChecker, error) {
	switch policy {
	case config.ServiceabilityAlways:
		return AlwaysServiceable{}, nil
	case config.ServiceabilityRadius:
		if radiusKm <= 0 {
			radiusKm = config.DefaultServiceRadiusKm
		}
		return RadiusServiceability{
			Center:   domain.DefaultLocation().Coordinates(),
			RadiusKm: radiusKm,
		}, nil
	case config.ServiceabilityZones, "":
		if zones == nil {
			return nil, fmt.Errorf("zones policy requires a zone repository")
		}
		return NewZoneServiceability(zones), nil
	default:
		return nil, fmt.Errorf("unknown serviceability policy '%s'", policy)
	}
}
