package geo

import "errors"

// Coordinates is a WGS84 latitude/longitude pair in degrees.
// Values are not range-checked; out-of-range inputs simply produce
// nonsensical distances downstream.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var (
	// ErrNoCoordinates means the lookup succeeded but matched nothing.
	ErrNoCoordinates = errors.New("no coordinates found for pincode")

	// ErrUpstream means the geocoding call itself failed.
	ErrUpstream = errors.New("geocoding service unavailable")
)
