package storage

import "time"

// SampleModel is the GORM model for the samples table
type SampleModel struct {
	Badge     string `gorm:"not null;default:''"`
	CreatedAt time.Time
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	ImageURL  string `gorm:"not null;default:''"`
	Name      string `gorm:"not null"`
	Position  int    `gorm:"not null;default:0;index:idx_sample_position"`
	Sub       string `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SampleModel) TableName() string { return "samples" }

// ZoneModel is the GORM model for the service_zones table
type ZoneModel struct {
	CreatedAt time.Time
	ID        uint    `gorm:"primaryKey"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Name      string  `gorm:"not null;uniqueIndex:idx_zone_name"`
	RadiusKm  float64 `gorm:"not null;check:radius_km > 0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ZoneModel) TableName() string { return "service_zones" }
