package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFromCandidate_AddressPrecedence(t *testing.T) {
	coords := Coordinates{Latitude: 12.91, Longitude: 77.61}

	tests := []struct {
		name       string
		candidate  AddressCandidate
		address    string
		city       string
		subAddress string
	}{
		{
			name:       "name wins",
			candidate:  AddressCandidate{Name: "BTM Layout", Street: "16th Main", District: "South", City: "Bengaluru"},
			address:    "BTM Layout",
			city:       "Bengaluru",
			subAddress: "16th Main",
		},
		{
			name:       "street when no name",
			candidate:  AddressCandidate{Street: "16th Main", District: "South", Subregion: "Bangalore Urban"},
			address:    "16th Main",
			city:       "Bangalore Urban",
			subAddress: "16th Main",
		},
		{
			name:       "district when no name or street",
			candidate:  AddressCandidate{District: "Koramangala", Region: "Karnataka"},
			address:    "Koramangala",
			city:       "Karnataka",
			subAddress: "Koramangala",
		},
		{
			name:       "coordinates when empty",
			candidate:  AddressCandidate{},
			address:    "12.9100, 77.6100",
			city:       UnknownCity,
			subAddress: "12.9100, 77.6100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := LabelFromCandidate(coords, tt.candidate)
			assert.Equal(t, tt.address, loc.Address)
			assert.Equal(t, tt.city, loc.City)
			assert.Equal(t, tt.subAddress, loc.SubAddress)
			assert.Equal(t, 12.91, loc.Latitude)
			assert.Equal(t, 77.61, loc.Longitude)
		})
	}
}

func TestLabelFromCoordinates(t *testing.T) {
	loc := LabelFromCoordinates(Coordinates{Latitude: 12.345678, Longitude: 77.5})

	assert.Equal(t, "12.3457, 77.5000", loc.Address)
	assert.Equal(t, UnknownCity, loc.City)
	assert.Equal(t, "Coordinates: 12.3457, 77.5000", loc.SubAddress)
}

func TestDefaultLocation(t *testing.T) {
	loc := DefaultLocation()

	assert.Equal(t, 12.9384164, loc.Latitude)
	assert.Equal(t, 77.6993338, loc.Longitude)
	assert.Equal(t, "Default Location (Bangalore)", loc.Address)
	assert.Equal(t, "Bangalore", loc.City)
	assert.Equal(t, "BTM Layout, Bangalore", loc.SubAddress)
	assert.True(t, loc.IsServiceable)
	require.NoError(t, loc.Validate())
}

func TestResolvedLocation_Validate(t *testing.T) {
	tests := []struct {
		name string
		loc  ResolvedLocation
		ok   bool
	}{
		{"valid", ResolvedLocation{Latitude: 10, Longitude: 20, Address: "x"}, true},
		{"latitude too large", ResolvedLocation{Latitude: 91, Longitude: 20, Address: "x"}, false},
		{"longitude too small", ResolvedLocation{Latitude: 10, Longitude: -181, Address: "x"}, false},
		{"nan", ResolvedLocation{Latitude: math.NaN(), Longitude: 20, Address: "x"}, false},
		{"infinite", ResolvedLocation{Latitude: 10, Longitude: math.Inf(1), Address: "x"}, false},
		{"empty address", ResolvedLocation{Latitude: 10, Longitude: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMalformedLocation)
		})
	}
}

func TestServiceZone_Contains(t *testing.T) {
	zone := ServiceZone{Name: "Bangalore", Latitude: DefaultLatitude, Longitude: DefaultLongitude, RadiusKm: 25}

	assert.True(t, zone.Contains(Coordinates{Latitude: 12.91, Longitude: 77.61}))
	assert.False(t, zone.Contains(Coordinates{Latitude: 19.076, Longitude: 72.8777})) // Mumbai
}

func TestDistanceKm(t *testing.T) {
	bangalore := Coordinates{Latitude: 12.9716, Longitude: 77.5946}
	chennai := Coordinates{Latitude: 13.0827, Longitude: 80.2707}

	assert.InDelta(t, 290, DistanceKm(bangalore, chennai), 5)
	assert.Zero(t, DistanceKm(bangalore, bangalore))
}
