package service

import (
	"context"
	"errors"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

// ProfileService owns per-user profile state, most importantly the
// active-map pointer.
type ProfileService struct {
	Store store.Store
}

// EnsureProfile returns the user's profile, creating a free-tier row on
// first contact. The profile id is the identity provider's subject.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, err
	}

	p = domain.Profile{
		ID:          userID,
		Entitlement: domain.EntitlementFree,
	}
	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		// Two first requests can race; the loser reads the winner's row.
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.Profiles().GetProfile(ctx, userID)
		}
		return domain.Profile{}, err
	}

	slogx.FromContext(ctx).Debug("profile created", "user_id", userID)
	return s.Store.Profiles().GetProfile(ctx, userID)
}

// GetProfile returns the user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	return s.Store.Profiles().GetProfile(ctx, userID)
}

// SetActiveMap overwrites the active-map pointer. Deliberately permissive:
// no membership validation happens on write. nil scopes the user back to
// the aggregate all-maps view.
func (s *ProfileService) SetActiveMap(ctx context.Context, userID string, mapID *string) error {
	return s.Store.Profiles().UpdateActiveMap(ctx, userID, mapID)
}

// ResolveActiveMap returns the map the user's pointer refers to, validated
// against their current memberships. A dangling pointer (deleted map, or a
// map the user has left) degrades to the user's first membership; a user
// with no memberships resolves to nil, the aggregate view.
func (s *ProfileService) ResolveActiveMap(ctx context.Context, userID string) (*domain.Map, error) {
	profile, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.ActiveMapID != nil {
		if m, err := s.memberMap(ctx, *profile.ActiveMapID, userID); err != nil {
			return nil, err
		} else if m != nil {
			return m, nil
		}
		// Pointer is dangling; fall through to the first membership.
	}

	memberships, err := s.Store.Memberships().ListUserMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, membership := range memberships {
		if m, err := s.memberMap(ctx, membership.MapID, userID); err != nil {
			return nil, err
		} else if m != nil {
			return m, nil
		}
	}
	return nil, nil
}

// memberMap returns the map if it exists and the user belongs to it, else
// nil.
func (s *ProfileService) memberMap(ctx context.Context, mapID, userID string) (*domain.Map, error) {
	if _, err := s.Store.Memberships().GetMembership(ctx, mapID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	m, err := s.Store.Maps().GetMapByID(ctx, mapID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
