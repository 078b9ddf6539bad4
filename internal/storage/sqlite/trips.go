package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}

	var creator interface{}
	if trip.CreatorID != "" {
		creator = trip.CreatorID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trips (id, name, description, creator_id, created_at) VALUES (?, ?, ?, ?, ?)",
		trip.ID, trip.Name, trip.Description, creator, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	var creator sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, creator_id, created_at FROM trips WHERE id = ?",
		tripID,
	).Scan(&trip.ID, &trip.Name, &trip.Description, &creator, &trip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if creator.Valid {
		trip.CreatorID = creator.String
	}

	return trip, nil
}

// ListTripsForUser retrieves every trip whose roster includes the user.
func (s *SQLiteStore) ListTripsForUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT t.id, t.name, t.description, t.creator_id, t.created_at
		 FROM trips t
		 JOIN members m ON m.trip_id = t.id
		 WHERE m.user_id = ?
		 ORDER BY t.created_at, t.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for user: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip := &models.Trip{}
		var creator sql.NullString
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Description, &creator, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		if creator.Valid {
			trip.CreatorID = creator.String
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// DeleteTrip removes a trip. The roster, expenses and debts go with it via
// foreign key cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}
