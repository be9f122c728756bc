package commerce

import "errors"

// Product is the commerce backend's view of a product and its
// per-location stock, in the order the backend returned it.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Variants []Variant `json:"variants"`
}

// Variant is one sellable variation of a product.
type Variant struct {
	ID     string           `json:"id"`
	Levels []InventoryLevel `json:"levels"`
}

// InventoryLevel is one variant's stock entry at one location. The
// backend may omit the "available" quantity bucket entirely.
type InventoryLevel struct {
	Location   string     `json:"location"`
	Quantities []Quantity `json:"quantities"`
}

// Quantity is a named stock bucket ("available", "committed", ...).
type Quantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// InventoryRecord is one flattened (location, available) pair.
type InventoryRecord struct {
	Location  string `json:"location"`
	Available int    `json:"available"`
}

var (
	// ErrProductNotFound means the backend has no such product.
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstream means the inventory call itself failed.
	ErrUpstream = errors.New("commerce service unavailable")
)
