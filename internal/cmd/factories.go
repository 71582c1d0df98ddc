package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/freshcart/internal/adapters/device"
	"github.com/renato0307/freshcart/internal/adapters/geocache"
	"github.com/renato0307/freshcart/internal/adapters/otp"
	adapterstorage "github.com/renato0307/freshcart/internal/adapters/storage"
	"github.com/renato0307/freshcart/internal/config"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
	"github.com/renato0307/freshcart/internal/services"
)

// ContainerOptions selects the adapters wired into a Container
type ContainerOptions struct {
	DBPath          string
	GeocodeCache    string
	OTPLatency      time.Duration
	RedisURL        string
	ScenarioPath    string
	ServiceRadiusKm float64
	Serviceability  string
}

// Container holds the dependencies shared by every onboarding session
type Container struct {
	Catalog        ports.Catalog
	GeocodeCache   ports.GeocodeCache // nil when caching is disabled
	OTPGateway     ports.OTPGateway
	Scenario       *device.Scenario
	Serviceability ports.ServiceabilityChecker

	// Internal - for cleanup only
	closers []func() error
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	scenario, err := device.LoadScenario(opts.ScenarioPath)
	if err != nil {
		return nil, err
	}

	catalog, err := adapterstorage.NewSQLiteCatalog(opts.DBPath)
	if err != nil {
		return nil, err
	}
	c := &Container{
		Catalog:    catalog,
		OTPGateway: otp.NewStaticGateway(opts.OTPLatency),
		Scenario:   scenario,
		closers:    []func() error{catalog.Close},
	}

	c.Serviceability, err = services.NewServiceabilityChecker(opts.Serviceability, opts.ServiceRadiusKm, catalog)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.GeocodeCache, err = c.newGeocodeCache(opts)
	if err != nil {
		c.Close()
		return nil, err
	}

	logging.Logger.Info("Container ready",
		"scenario", scenario.Name,
		"serviceability", opts.Serviceability,
		"geocode_cache", opts.GeocodeCache)
	return c, nil
}

func (c *Container) newGeocodeCache(opts ContainerOptions) (ports.GeocodeCache, error) {
	storeType := geocache.StoreType(opts.GeocodeCache)
	if storeType != geocache.StoreTypeRedis {
		return geocache.New(storeType)
	}

	redisURL := opts.RedisURL
	if redisURL == "" {
		redisURL = config.DefaultRedisURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := geocache.Connect(ctx, redisURL)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, client.Close)

	return geocache.New(storeType, geocache.WithRedisClient(client))
}

// NewSession creates an onboarding session with its own simulated device
func (c *Container) NewSession() *services.Session {
	return services.NewSession(services.SessionDeps{
		Catalog:        c.Catalog,
		Device:         device.NewSimulator(c.Scenario, nil),
		GeocodeCache:   c.GeocodeCache,
		OTPGateway:     c.OTPGateway,
		Serviceability: c.Serviceability,
	})
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("failed to close container: %w", errors.Join(errs...))
	}
	return nil
}
