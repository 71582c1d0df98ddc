package ports

import (
	"context"

	"github.com/renato0307/freshcart/internal/domain"
)

// SampleCatalog reads the product samples offered during onboarding
type SampleCatalog interface {
	GetSample(ctx context.Context, id int) (*domain.Sample, error)
	ListSamples(ctx context.Context) ([]domain.Sample, error)
}

// ZoneRepository stores the areas where delivery is offered
type ZoneRepository interface {
	AddZone(ctx context.Context, zone domain.ServiceZone) error
	ListZones(ctx context.Context) ([]domain.ServiceZone, error)
}

// Catalog is the composite interface implemented by the storage adapter
type Catalog interface {
	SampleCatalog
	ZoneRepository
	Close() error
}
