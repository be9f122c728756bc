package warehouse

import (
	"math"

	"github.com/dispatchly/fulfillment-backend/internal/modules/geo"
)

// Registry is the fixed set of warehouses the system can route to.
// It is built once at process start and never mutated afterwards, so it
// is safe for concurrent reads without locking. Entry order is the
// construction order and is significant: FindNearest breaks distance
// ties in favour of the earlier entry.
type Registry struct {
	entries []Warehouse
	byName  map[string]string // display name -> pincode
}

// NewRegistry builds an immutable registry from the given warehouses.
// Pincode uniqueness is the caller's responsibility (enforced by
// construction of the seed data, not checked at runtime).
func NewRegistry(warehouses []Warehouse) *Registry {
	r := &Registry{
		entries: make([]Warehouse, len(warehouses)),
		byName:  make(map[string]string, len(warehouses)),
	}
	copy(r.entries, warehouses)
	for _, w := range r.entries {
		r.byName[w.Name] = w.Pincode
	}
	return r
}

// DefaultRegistry returns the built-in warehouse network, used when no
// external registry source is configured.
func DefaultRegistry() *Registry {
	return NewRegistry([]Warehouse{
		{Pincode: "110001", Name: "Delhi Warehouse", Coords: geo.Coordinates{Lat: 28.6329, Lon: 77.2195}},
		{Pincode: "400001", Name: "Mumbai Warehouse", Coords: geo.Coordinates{Lat: 18.9388, Lon: 72.8354}},
		{Pincode: "560001", Name: "Bengaluru Warehouse", Coords: geo.Coordinates{Lat: 12.9763, Lon: 77.6033}},
		{Pincode: "700001", Name: "Kolkata Warehouse", Coords: geo.Coordinates{Lat: 22.5726, Lon: 88.3639}},
		{Pincode: "600001", Name: "Chennai Warehouse", Coords: geo.Coordinates{Lat: 13.0827, Lon: 80.2707}},
	})
}

// FindNearest scans every entry and returns the one nearest to user.
// The strict less-than comparison means the first equidistant entry
// wins. The second return value is false only for an empty registry.
func (r *Registry) FindNearest(user geo.Coordinates) (NearestResult, bool) {
	if len(r.entries) == 0 {
		return NearestResult{}, false
	}
	best := r.entries[0]
	bestDist := haversineKm(user, best.Coords)
	for _, w := range r.entries[1:] {
		if d := haversineKm(user, w.Coords); d < bestDist {
			best, bestDist = w, d
		}
	}
	return NearestResult{Pincode: best.Pincode, Coords: best.Coords}, true
}

// PincodeFor maps a warehouse display name to its registry identifier.
func (r *Registry) PincodeFor(displayName string) (string, bool) {
	pincode, ok := r.byName[displayName]
	return pincode, ok
}

// Warehouses returns a copy of the registry entries in iteration order.
func (r *Registry) Warehouses() []Warehouse {
	out := make([]Warehouse, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of registered warehouses.
func (r *Registry) Len() int { return len(r.entries) }

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two points in
// kilometres.
func haversineKm(a, b geo.Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
