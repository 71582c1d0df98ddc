package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// SQLiteCatalog implements ports.Catalog using GORM
type SQLiteCatalog struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Catalog = (*SQLiteCatalog)(nil)

// gormLogger routes GORM output to the freshcart logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FRESHCART_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCatalog opens (or creates) the catalog database and seeds it on first use
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets several SSH sessions read while the CLI adds zones
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SampleModel{}, &ZoneModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	catalog := &SQLiteCatalog{db: db}
	if err := catalog.seed(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Catalog opened", "path", dbPath)
	return catalog, nil
}

// seed inserts the default samples and zone into empty tables
func (c *SQLiteCatalog) seed() error {
	return withRetry(func() error {
		return c.db.Transaction(func(tx *gorm.DB) error {
			var samples int64
			if err := tx.Model(&SampleModel{}).Count(&samples).Error; err != nil {
				return err
			}
			if samples == 0 {
				models := make([]SampleModel, 0, len(DefaultSamples))
				for i, s := range DefaultSamples {
					models = append(models, domainToSampleModel(s, i))
				}
				if err := tx.Create(&models).Error; err != nil {
					return fmt.Errorf("failed to seed samples: %w", err)
				}
				logging.Logger.Info("Seeded sample catalog", "count", len(models))
			}

			var zones int64
			if err := tx.Model(&ZoneModel{}).Count(&zones).Error; err != nil {
				return err
			}
			if zones == 0 {
				zone := domainToZoneModel(DefaultZone)
				if err := tx.Create(&zone).Error; err != nil {
					return fmt.Errorf("failed to seed service zone: %w", err)
				}
				logging.Logger.Info("Seeded service zone", "name", zone.Name)
			}
			return nil
		})
	}, 3)
}

// Close closes the database connection
func (c *SQLiteCatalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetSample implements ports.SampleCatalog
func (c *SQLiteCatalog) GetSample(ctx context.Context, id int) (*domain.Sample, error) {
	var model SampleModel

	err := withRetry(func() error {
		return c.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSampleNotFound, id)
		}
		return nil, fmt.Errorf("failed to get sample %d: %w", id, err)
	}

	sample := sampleModelToDomain(model)
	return &sample, nil
}

// ListSamples implements ports.SampleCatalog
func (c *SQLiteCatalog) ListSamples(ctx context.Context) ([]domain.Sample, error) {
	var models []SampleModel

	err := withRetry(func() error {
		return c.db.WithContext(ctx).Order("position ASC, id ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}

	samples := make([]domain.Sample, 0, len(models))
	for _, m := range models {
		samples = append(samples, sampleModelToDomain(m))
	}
	return samples, nil
}

// AddZone implements ports.ZoneRepository
func (c *SQLiteCatalog) AddZone(ctx context.Context, zone domain.ServiceZone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	model := domainToZoneModel(zone)

	err := withRetry(func() error {
		return c.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: %s", domain.ErrZoneExists, zone.Name)
		}
		return fmt.Errorf("failed to add zone %s: %w", zone.Name, err)
	}

	logging.Logger.Info("Service zone added", "name", zone.Name, "radius_km", zone.RadiusKm)
	return nil
}

// ListZones implements ports.ZoneRepository
func (c *SQLiteCatalog) ListZones(ctx context.Context) ([]domain.ServiceZone, error) {
	var models []ZoneModel

	err := withRetry(func() error {
		return c.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	zones := make([]domain.ServiceZone, 0, len(models))
	for _, m := range models {
		zones = append(zones, zoneModelToDomain(m))
	}
	return zones, nil
}

// withRetry retries fn while SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
