package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// CreateMember adds a roster entry. The (trip, contact handle) pair is
// unique; a collision reports storage.ErrDuplicate and leaves the roster
// unchanged.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM members WHERE trip_id = ? AND contact_handle = ?",
		member.TripID, member.ContactHandle,
	).Scan(&exists)
	if err == nil {
		return fmt.Errorf("member with handle %s in trip %s: %w",
			member.ContactHandle, member.TripID, storage.ErrDuplicate)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO members (id, trip_id, name, contact_handle, user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		member.ID, member.TripID, member.Name, member.ContactHandle, member.UserID, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// ListMembers retrieves a trip's roster in insertion order.
func (s *SQLiteStore) ListMembers(ctx context.Context, tripID string) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, contact_handle, user_id, created_at
		 FROM members WHERE trip_id = ? ORDER BY rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		m := &models.Member{}
		if err := rows.Scan(&m.ID, &m.TripID, &m.Name, &m.ContactHandle, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
