package warehouse

import "github.com/dispatchly/fulfillment-backend/internal/modules/geo"

// Warehouse is one fulfillment location: its pincode (the registry
// identifier), its human-readable display name, and its coordinates.
type Warehouse struct {
	Pincode string          `json:"pincode"`
	Name    string          `json:"name"`
	Coords  geo.Coordinates `json:"coords"`
}

// NearestResult identifies the registry entry closest to a query point.
type NearestResult struct {
	Pincode string          `json:"pincode"`
	Coords  geo.Coordinates `json:"coords"`
}
