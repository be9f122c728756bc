package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatchly/fulfillment-backend/internal/modules/geo"
)

func testRegistry() *Registry {
	return NewRegistry([]Warehouse{
		{Pincode: "110001", Name: "Alpha Warehouse", Coords: geo.Coordinates{Lat: 0, Lon: 0}},
		{Pincode: "400001", Name: "Bravo Warehouse", Coords: geo.Coordinates{Lat: 10, Lon: 10}},
		{Pincode: "560001", Name: "Charlie Warehouse", Coords: geo.Coordinates{Lat: -20, Lon: 5}},
	})
}

func TestFindNearestMinimality(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		name        string
		user        geo.Coordinates
		wantPincode string
	}{
		{name: "near origin", user: geo.Coordinates{Lat: 1, Lon: 1}, wantPincode: "110001"},
		{name: "near bravo", user: geo.Coordinates{Lat: 9, Lon: 11}, wantPincode: "400001"},
		{name: "near charlie", user: geo.Coordinates{Lat: -19, Lon: 4}, wantPincode: "560001"},
		{name: "exactly on a warehouse", user: geo.Coordinates{Lat: 10, Lon: 10}, wantPincode: "400001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearest, ok := r.FindNearest(tt.user)
			require.True(t, ok)
			assert.Equal(t, tt.wantPincode, nearest.Pincode)

			// Minimality: no other entry is strictly closer.
			best := haversineKm(tt.user, nearest.Coords)
			for _, w := range r.Warehouses() {
				assert.GreaterOrEqual(t, haversineKm(tt.user, w.Coords), best)
			}
		})
	}
}

func TestFindNearestTieBreakFirstWins(t *testing.T) {
	r := NewRegistry([]Warehouse{
		{Pincode: "A", Name: "First", Coords: geo.Coordinates{Lat: 5, Lon: 5}},
		{Pincode: "B", Name: "Second", Coords: geo.Coordinates{Lat: 5, Lon: 5}},
	})

	nearest, ok := r.FindNearest(geo.Coordinates{Lat: 1, Lon: 1})
	require.True(t, ok)
	assert.Equal(t, "A", nearest.Pincode, "first equidistant entry must win")
}

func TestFindNearestEmptyRegistry(t *testing.T) {
	r := NewRegistry(nil)
	_, ok := r.FindNearest(geo.Coordinates{Lat: 1, Lon: 1})
	assert.False(t, ok)
}

func TestPincodeFor(t *testing.T) {
	r := testRegistry()

	pincode, ok := r.PincodeFor("Bravo Warehouse")
	require.True(t, ok)
	assert.Equal(t, "400001", pincode)

	_, ok = r.PincodeFor("Unknown Warehouse")
	assert.False(t, ok)
}

func TestDefaultRegistryOrderIsStable(t *testing.T) {
	a := DefaultRegistry().Warehouses()
	b := DefaultRegistry().Warehouses()
	require.Equal(t, a, b)
	assert.Equal(t, "110001", a[0].Pincode)
}
