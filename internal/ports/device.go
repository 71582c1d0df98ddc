package ports

import (
	"context"

	"github.com/renato0307/freshcart/internal/domain"
)

// PermissionService negotiates foreground location permission
type PermissionService interface {
	// Request prompts the user and returns the resulting status
	Request(ctx context.Context) (domain.PermissionStatus, error)

	// ServicesEnabled reports whether device location services are on
	ServicesEnabled(ctx context.Context) (bool, error)

	// Status returns the current permission status without prompting
	Status(ctx context.Context) (domain.PermissionStatus, error)
}

// PositionService acquires device positions.
// Both methods return domain.ErrPositionUnavailable when no fix can be produced.
type PositionService interface {
	Current(ctx context.Context, opts domain.PositionOptions) (domain.Coordinates, error)
	LastKnown(ctx context.Context, opts domain.LastKnownOptions) (domain.Coordinates, error)
}

// GeocodeService converts between coordinates and addresses
type GeocodeService interface {
	// Forward returns the coordinates matching a free-text query, best match first
	Forward(ctx context.Context, query string) ([]domain.Coordinates, error)

	// Reverse returns the address candidates for a point, best match first
	Reverse(ctx context.Context, coords domain.Coordinates) ([]domain.AddressCandidate, error)
}

// SettingsLauncher opens the system settings page of the app
type SettingsLauncher interface {
	OpenAppSettings(ctx context.Context) error
}

// Device bundles every device service the location workflow depends on
type Device interface {
	GeocodeService
	PermissionService
	PositionService
	SettingsLauncher
}
