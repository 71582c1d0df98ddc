package storage

import "github.com/renato0307/freshcart/internal/domain"

// DefaultSamples are inserted when the catalog is created
var DefaultSamples = []domain.Sample{
	{
		Badge:    "Milked 5 hrs ago",
		ID:       1,
		ImageURL: "https://res.cloudinary.com/deq5wxwiw/image/upload/v1750868323/image-milk-bottle_vwyukg.jpg",
		Name:     "A2 Cow Milk",
		Sub:      "GRASS-FED COWS",
	},
	{
		Badge:    "Packed 3 hrs ago",
		ID:       2,
		ImageURL: "https://res.cloudinary.com/deq5wxwiw/image/upload/v1750868427/chocolate_totgip.jpg",
		Name:     "Cookie Hamper",
		Sub:      "By YuvaFlowers",
	},
	{
		Badge:    "Harvested 6 hrs ago",
		ID:       3,
		ImageURL: "https://res.cloudinary.com/deq5wxwiw/image/upload/v1750868767/tomatoes1_oa1hee.jpg",
		Name:     "Fresh Tomatoes",
		Sub:      "Farm Fresh Batch",
	},
	{
		Badge:    "Sourced 4 hrs ago",
		ID:       4,
		ImageURL: "https://res.cloudinary.com/deq5wxwiw/image/upload/v1750868653/apple_n0cfxc.jpg",
		Name:     "Organic Apples",
		Sub:      "Himalayan Orchards",
	},
	{
		Badge:    "Picked Today",
		ID:       5,
		ImageURL: "https://res.cloudinary.com/deq5wxwiw/image/upload/v1750868717/oranges_awz9ui.jpg",
		Name:     "Juicy Oranges",
		Sub:      "Nagpur Farms",
	},
}

// DefaultZone covers metropolitan Bangalore, including the default location
var DefaultZone = domain.ServiceZone{
	Latitude:  12.9716,
	Longitude: 77.5946,
	Name:      "Bangalore",
	RadiusKm:  30,
}
