package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dispatchly/fulfillment-backend/internal/modules/geo"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a warehouse source backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pincode, name, latitude, longitude
		FROM warehouses
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		var coords geo.Coordinates
		if err := rows.Scan(&w.Pincode, &w.Name, &coords.Lat, &coords.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse row: %w", err)
		}
		w.Coords = coords
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read warehouse rows: %w", err)
	}
	return warehouses, nil
}
