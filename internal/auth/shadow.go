package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// ShadowProvisioner resolves trip members to accounts. When a member's name
// matches a registered username (case-insensitively) the existing account is
// linked; otherwise a shadow account is provisioned so the member is a
// first-class ledger participant without ever signing up.
type ShadowProvisioner struct {
	users storage.UserStore
}

// NewShadowProvisioner creates a provisioner backed by the given user store.
func NewShadowProvisioner(users storage.UserStore) *ShadowProvisioner {
	return &ShadowProvisioner{users: users}
}

// ShadowUsername derives the deterministic username for an unregistered
// member: the lowercased name with whitespace collapsed to dots, suffixed
// with a trip-id fragment. The suffix keeps identical names in different
// trips from colliding, while the same (name, trip) pair always derives the
// same username so repeated provisioning is idempotent.
func ShadowUsername(name, tripID string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "."))
	suffix := tripID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return slug + "." + suffix
}

// Resolve returns the account for a member being added to a trip. The
// lookup order is: explicit username match, prior shadow account for the
// same (name, trip), then a freshly provisioned shadow account.
func (p *ShadowProvisioner) Resolve(ctx context.Context, name, tripID string) (*models.User, error) {
	if user, err := p.users.GetUserByUsername(ctx, name); err == nil {
		return user, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	shadowName := ShadowUsername(name, tripID)
	if user, err := p.users.GetUserByUsername(ctx, shadowName); err == nil {
		return user, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve shadow account: %w", err)
	}

	user := models.NewUser(shadowName, name, "")
	if err := p.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to provision shadow account: %w", err)
	}
	return user, nil
}
