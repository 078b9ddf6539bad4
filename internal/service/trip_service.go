package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/splitease/backend/internal/auth"
	"github.com/splitease/backend/internal/metrics"
	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// MemberInput describes one roster entry for trip creation.
type MemberInput struct {
	Name          string
	ContactHandle string
}

// TripService manages trips and their rosters.
type TripService struct {
	store       storage.Store
	provisioner *auth.ShadowProvisioner
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{
		store:       store,
		provisioner: auth.NewShadowProvisioner(store),
	}
}

// CreateTrip creates a trip and adds the initial roster. Each member is
// resolved to a registered account or a provisioned shadow account.
func (s *TripService) CreateTrip(ctx context.Context, name, description, creatorID string, members []MemberInput) (*models.Trip, error) {
	slog.Info("CreateTrip request received", "name", name, "members_count", len(members))

	if name == "" || utf8.RuneCountInString(name) > models.MaxTripNameLength {
		return nil, ErrInvalidTripName
	}

	trip := &models.Trip{
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, err
	}

	for _, m := range members {
		if _, err := s.AddMember(ctx, trip.ID, m.Name, m.ContactHandle); err != nil {
			return nil, fmt.Errorf("failed to add member %q: %w", m.Name, err)
		}
	}

	metrics.TripsCreated.Inc()
	slog.Info("Trip created", "trip_id", trip.ID)

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return s.store.GetTrip(ctx, tripID)
}

// AddMember adds a person to a trip's roster. The contact handle must be
// unused within the trip; the roster is unchanged when it collides.
func (s *TripService) AddMember(ctx context.Context, tripID, name, contactHandle string) (*models.Member, error) {
	slog.Info("AddMember request received", "trip_id", tripID, "name", name)

	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	account, err := s.provisioner.Resolve(ctx, name, tripID)
	if err != nil {
		slog.Error("AddMember account resolution failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	member := &models.Member{
		TripID:        tripID,
		Name:          name,
		ContactHandle: contactHandle,
		UserID:        account.ID,
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateMember
		}
		slog.Error("AddMember failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	slog.Info("Member added", "trip_id", tripID, "member_id", member.ID, "user_id", account.ID)
	return member, nil
}

// ListMembers retrieves a trip's roster in insertion order.
func (s *TripService) ListMembers(ctx context.Context, tripID string) ([]*models.Member, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, tripID)
}

// DeleteTrip removes a trip along with its roster, expenses and debts.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	slog.Info("DeleteTrip request received", "trip_id", tripID)
	return s.store.DeleteTrip(ctx, tripID)
}
