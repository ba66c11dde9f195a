package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohamedthameursassi/flightroutes/database"
	"github.com/mohamedthameursassi/flightroutes/models"
)

// NetworkRepository stores a location catalogue and its connection records.
// It serves as both a record source and a location source for the loader.
type NetworkRepository struct {
	db *sql.DB
}

func NewNetworkRepository(db *sql.DB) *NetworkRepository {
	return &NetworkRepository{db: db}
}

// Locations returns the catalogue in its stored order.
func (r *NetworkRepository) Locations(ctx context.Context) ([]models.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, latitude, longitude FROM locations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.Name, &l.Coordinate.Latitude, &l.Coordinate.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// Records returns the connection rows in insertion order.
func (r *NetworkRepository) Records(ctx context.Context) ([]models.ConnectionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT origin, destination, cost, distance_km, duration
		FROM connections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	var records []models.ConnectionRecord
	for rows.Next() {
		var c models.ConnectionRecord
		if err := rows.Scan(&c.Origin, &c.Destination, &c.Cost, &c.Distance, &c.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

// ReplaceNetwork swaps the stored network for n in one transaction.
func (r *NetworkRepository) ReplaceNetwork(ctx context.Context, n models.Network) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM connections"); err != nil {
			return fmt.Errorf("failed to clear connections: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM locations"); err != nil {
			return fmt.Errorf("failed to clear locations: %w", err)
		}
		for i, l := range n.Locations {
			_, err := tx.ExecContext(ctx, `INSERT INTO locations (name, latitude, longitude, position) VALUES (?, ?, ?, ?)`,
				l.Name, l.Coordinate.Latitude, l.Coordinate.Longitude, i)
			if err != nil {
				return fmt.Errorf("failed to insert location %q: %w", l.Name, err)
			}
		}
		for _, c := range n.Connections {
			_, err := tx.ExecContext(ctx, `INSERT INTO connections (origin, destination, cost, distance_km, duration)
				VALUES (?, ?, ?, ?, ?)`, c.Origin, c.Destination, c.Cost, c.Distance, c.Duration)
			if err != nil {
				return fmt.Errorf("failed to insert connection %s - %s: %w", c.Origin, c.Destination, err)
			}
		}
		return nil
	})
}

func (r *NetworkRepository) CountConnections(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM connections").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return n, nil
}
