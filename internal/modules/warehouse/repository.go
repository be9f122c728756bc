package warehouse

import "context"

// Repository loads warehouse rows from an external source. It is read
// exactly once, at startup, to construct the immutable Registry.
type Repository interface {
	ListWarehouses(ctx context.Context) ([]Warehouse, error)
}
