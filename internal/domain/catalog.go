package domain

import "sort"

// VehicleType is a catalog entry, reference data not owned by users.
type VehicleType struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	Capacity       string  `json:"capacity"`
	AllowedLuggage int     `json:"allowedLuggage"`
	PricePerKm     float64 `json:"pricePerKm"`
	Image          string  `json:"image"`
}

var vehicleCatalog = map[string]VehicleType{
	"sedan": {
		Key:            "sedan",
		Name:           "Sedan (4+1)",
		Capacity:       "4+1",
		AllowedLuggage: 30,
		PricePerKm:     14.00,
		Image:          "/img5.png",
	},
	"muv_innova": {
		Key:            "muv_innova",
		Name:           "MUV-Innova (7+1)",
		Capacity:       "7+1",
		AllowedLuggage: 60,
		PricePerKm:     19.00,
		Image:          "/img6.png",
	},
	"muv_xylo": {
		Key:            "muv_xylo",
		Name:           "MUV-Xylo (7+1)",
		Capacity:       "7+1",
		AllowedLuggage: 70,
		PricePerKm:     18.00,
		Image:          "/img7.png",
	},
	"tempo_traveller": {
		Key:            "tempo_traveller",
		Name:           "Tempo Traveller (12+1)",
		Capacity:       "12+1",
		AllowedLuggage: 40,
		PricePerKm:     30.00,
		Image:          "/img8.png",
	},
}

// LookupVehicleType resolves a catalog key.
func LookupVehicleType(key string) (VehicleType, bool) {
	v, ok := vehicleCatalog[key]
	return v, ok
}

// VehicleTypes returns the catalog sorted by key for stable output.
func VehicleTypes() []VehicleType {
	keys := make([]string, 0, len(vehicleCatalog))
	for k := range vehicleCatalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]VehicleType, 0, len(keys))
	for _, k := range keys {
		out = append(out, vehicleCatalog[k])
	}
	return out
}

var cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Surat",
	"Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
	"Bhopal", "Visakhapatnam", "Patna", "Vadodara", "Ghaziabad",
	"Ludhiana", "Agra", "Nashik", "Faridabad", "Meerut",
	"Rajkot", "Varanasi", "Srinagar", "Aurangabad", "Dhanbad",
}

// Cities returns the serviceable cities, sorted.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	sort.Strings(out)
	return out
}
