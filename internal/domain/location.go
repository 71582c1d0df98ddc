package domain

import (
	"fmt"
	"math"
	"time"
)

// Default location used when no real position can be determined
const (
	DefaultLatitude   = 12.9384164
	DefaultLongitude  = 77.6993338
	DefaultAddress    = "Default Location (Bangalore)"
	DefaultCity       = "Bangalore"
	DefaultSubAddress = "BTM Layout, Bangalore"
	UnknownCity       = "Unknown"
)

// Coordinates is a position reported by the device or a geocoder
type Coordinates struct {
	Accuracy  float64 // Horizontal accuracy in meters (0 if unknown)
	Latitude  float64
	Longitude float64
	Timestamp time.Time // When the fix was taken (zero if unknown)
}

// Valid reports whether the coordinates are finite and within WGS84 bounds
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the coordinates with four decimals
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// AddressCandidate is one reverse-geocoding match
type AddressCandidate struct {
	City      string
	District  string
	Name      string
	Region    string
	Street    string
	Subregion string
}

// ResolvedLocation is a delivery location. It is replaced wholesale, never mutated.
type ResolvedLocation struct {
	Address       string  `json:"address"`
	City          string  `json:"city"`
	IsServiceable bool    `json:"is_serviceable"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	SubAddress    string  `json:"sub_address"`
}

// Coordinates returns the position of the location
func (l ResolvedLocation) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Validate rejects locations the session store must not accept
func (l ResolvedLocation) Validate() error {
	if !l.Coordinates().Valid() {
		return fmt.Errorf("%w: coordinates %v, %v out of range", ErrMalformedLocation, l.Latitude, l.Longitude)
	}
	if l.Address == "" {
		return fmt.Errorf("%w: empty address label", ErrMalformedLocation)
	}
	return nil
}

// DefaultLocation returns the fixed fallback location
func DefaultLocation() ResolvedLocation {
	return ResolvedLocation{
		Address:       DefaultAddress,
		City:          DefaultCity,
		IsServiceable: true,
		Latitude:      DefaultLatitude,
		Longitude:     DefaultLongitude,
		SubAddress:    DefaultSubAddress,
	}
}

// LabelFromCandidate builds a location from a reverse-geocoding match.
// Address: name > street > district > coordinates.
// City: city > subregion > region > "Unknown".
// Sub-address: street > district > coordinates.
func LabelFromCandidate(c Coordinates, candidate AddressCandidate) ResolvedLocation {
	coords := c.String()
	return ResolvedLocation{
		Address:    firstNonEmpty(candidate.Name, candidate.Street, candidate.District, coords),
		City:       firstNonEmpty(candidate.City, candidate.Subregion, candidate.Region, UnknownCity),
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		SubAddress: firstNonEmpty(candidate.Street, candidate.District, coords),
	}
}

// LabelFromCoordinates builds a coordinate-only location, used when geocoding fails
func LabelFromCoordinates(c Coordinates) ResolvedLocation {
	return ResolvedLocation{
		Address:    c.String(),
		City:       UnknownCity,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		SubAddress: "Coordinates: " + c.String(),
	}
}

// DistanceKm returns the great-circle distance between two points
func DistanceKm(a, b Coordinates) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ServiceZone is a circular area where delivery is offered
type ServiceZone struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	RadiusKm  float64 `json:"radius_km"`
}

// Contains reports whether the point lies inside the zone
func (z ServiceZone) Contains(c Coordinates) bool {
	return DistanceKm(Coordinates{Latitude: z.Latitude, Longitude: z.Longitude}, c) <= z.RadiusKm
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate rejects zones that cannot contain any point
func (z ServiceZone) Validate() error {
	if isBlank(z.Name) {
		return fmt.Errorf("%w: name is required", ErrInvalidZone)
	}
	if !(Coordinates{Latitude: z.Latitude, Longitude: z.Longitude}).Valid() {
		return fmt.Errorf("%w: coordinates %v, %v out of range", ErrInvalidZone, z.Latitude, z.Longitude)
	}
	if !(z.RadiusKm > 0) {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidZone)
	}
	return nil
}
