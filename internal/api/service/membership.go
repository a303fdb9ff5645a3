package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

var (
	ErrNotMember = errors.New("caller is not a member of this map")
	ErrLastOwner = errors.New("the last owner cannot leave the map")
)

// MembershipService exposes member listing and the leave-map operation.
type MembershipService struct {
	Store store.Store
}

// ListMembers returns the members of a map. Any member of the map may list.
func (s *MembershipService) ListMembers(ctx context.Context, mapID, callerID string) ([]domain.Membership, error) {
	if _, err := s.Store.Memberships().GetMembership(ctx, mapID, callerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, err
	}
	return s.Store.Memberships().ListMapMemberships(ctx, mapID)
}

// LeaveMap removes the caller's membership. The check and delete run in one
// transaction so two owners leaving concurrently cannot both pass the
// last-owner guard.
func (s *MembershipService) LeaveMap(ctx context.Context, mapID, userID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Memberships().GetMembership(ctx, mapID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if m.Role == domain.RoleOwner {
			owners, err := tx.Memberships().CountMapOwners(ctx, mapID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		return tx.Memberships().DeleteMembership(ctx, mapID, userID)
	})
	if err != nil {
		return err
	}

	log.Info("user left map",
		slog.String("map_id", mapID),
		slog.String("user_id", userID),
	)
	return nil
}
