package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/idx"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

var (
	ErrInvalidMapName = errors.New("map name is required")
	ErrMapNotFound    = errors.New("map not found")
	ErrNotMapOwner    = errors.New("caller does not own this map")
	ErrFreemiumLimit  = errors.New("free accounts are limited to one owned map")
)

// freeOwnedMapLimit is the freemium cap on maps a free-tier user may own.
// It applies at creation time only; joining maps via invites is never
// entitlement-gated.
const freeOwnedMapLimit = 1

// MapService manages map lifecycle and the owner membership that every map
// starts with.
type MapService struct {
	Store store.Store
}

// MapWithRole pairs a map with the caller's role in it.
type MapWithRole struct {
	Map  domain.Map
	Role domain.Role
}

// CreateMap creates a map with the caller as its owner. The map, the owner
// membership, and the default active-map pointer commit as one transaction.
func (s *MapService) CreateMap(ctx context.Context, userID, name string) (domain.Map, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Map{}, ErrInvalidMapName
	}

	profile, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		return domain.Map{}, err
	}

	// Freemium gate: free-tier users may own at most one map.
	if profile.Entitlement == domain.EntitlementFree {
		owned, err := s.Store.Memberships().CountUserOwnedMaps(ctx, userID)
		if err != nil {
			return domain.Map{}, err
		}
		if owned >= freeOwnedMapLimit {
			log.Warn("map creation blocked by freemium limit",
				slog.String("user_id", userID),
				slog.Int64("owned", owned),
			)
			return domain.Map{}, ErrFreemiumLimit
		}
	}

	newMap := domain.Map{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: userID,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Maps().CreateMap(ctx, newMap); err != nil {
			return err
		}

		membership := domain.Membership{
			ID:       idx.New().String(),
			MapID:    newMap.ID,
			UserID:   userID,
			Role:     domain.RoleOwner,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			return err
		}

		// A user's first map becomes their active map.
		if profile.ActiveMapID == nil {
			if err := tx.Profiles().UpdateActiveMap(ctx, userID, &newMap.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create map", slog.Any("error", err))
		return domain.Map{}, err
	}

	log.Info("map created",
		slog.String("map_id", newMap.ID),
		slog.String("user_id", userID),
	)

	return s.Store.Maps().GetMapByID(ctx, newMap.ID)
}

// ListMaps returns every map the user belongs to, with their role, in join
// order.
func (s *MapService) ListMaps(ctx context.Context, userID string) ([]MapWithRole, error) {
	memberships, err := s.Store.Memberships().ListUserMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]MapWithRole, 0, len(memberships))
	for _, m := range memberships {
		mp, err := s.Store.Maps().GetMapByID(ctx, m.MapID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, MapWithRole{Map: mp, Role: m.Role})
	}
	return out, nil
}

// RenameMap updates a map's name. Owner only.
func (s *MapService) RenameMap(ctx context.Context, mapID, userID, name string) (domain.Map, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Map{}, ErrInvalidMapName
	}

	if err := s.requireOwner(ctx, mapID, userID); err != nil {
		return domain.Map{}, err
	}

	if err := s.Store.Maps().UpdateMapName(ctx, mapID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Map{}, ErrMapNotFound
		}
		return domain.Map{}, err
	}
	return s.Store.Maps().GetMapByID(ctx, mapID)
}

// DeleteMap removes a map. Memberships and invites cascade with it; any
// active-map pointer at the deleted map goes dangling and is repaired at
// read time or by housekeeping. Owner only.
func (s *MapService) DeleteMap(ctx context.Context, mapID, userID string) error {
	log := slogx.FromContext(ctx)

	if err := s.requireOwner(ctx, mapID, userID); err != nil {
		return err
	}

	if err := s.Store.Maps().DeleteMap(ctx, mapID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMapNotFound
		}
		return err
	}

	log.Info("map deleted",
		slog.String("map_id", mapID),
		slog.String("user_id", userID),
	)
	return nil
}

func (s *MapService) requireOwner(ctx context.Context, mapID, userID string) error {
	m, err := s.Store.Memberships().GetMembership(ctx, mapID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotMapOwner
		}
		return err
	}
	if m.Role != domain.RoleOwner {
		return ErrNotMapOwner
	}
	return nil
}
