package storage

import (
	"github.com/renato0307/freshcart/internal/domain"
)

// sampleModelToDomain converts a SampleModel (GORM) to domain.Sample
func sampleModelToDomain(m SampleModel) domain.Sample {
	return domain.Sample{
		Badge:    m.Badge,
		ID:       m.ID,
		ImageURL: m.ImageURL,
		Name:     m.Name,
		Sub:      m.Sub,
	}
}

// domainToSampleModel converts a domain.Sample to SampleModel (GORM)
func domainToSampleModel(s domain.Sample, position int) SampleModel {
	return SampleModel{
		Badge:    s.Badge,
		ID:       s.ID,
		ImageURL: s.ImageURL,
		Name:     s.Name,
		Position: position,
		Sub:      s.Sub,
	}
}

// zoneModelToDomain converts a ZoneModel (GORM) to domain.ServiceZone
func zoneModelToDomain(m ZoneModel) domain.ServiceZone {
	return domain.ServiceZone{
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Name:      m.Name,
		RadiusKm:  m.RadiusKm,
	}
}

// domainToZoneModel converts a domain.ServiceZone to ZoneModel (GORM)
func domainToZoneModel(z domain.ServiceZone) ZoneModel {
	return ZoneModel{
		Latitude:  z.Latitude,
		Longitude: z.Longitude,
		Name:      z.Name,
		RadiusKm:  z.RadiusKm,
	}
}
