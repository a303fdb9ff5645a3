package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/cryptox"
	"github.com/wanderlist/wanderlist/pkg/idx"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteExpired        = errors.New("invite has expired")
	ErrInviteMaxUses        = errors.New("invite has reached its maximum uses")
	ErrAlreadyMember        = errors.New("user is already a member of this map")
)

// InviteService mints shareable invite tokens and redeems them into
// memberships.
type InviteService struct {
	Store store.Store
}

// JoinResult describes the map an invitee just joined.
type JoinResult struct {
	MapID   string
	MapName string
	Role    domain.Role
}

// CreateInvite mints a new invite for a map on behalf of one of its owners.
//
// expiresInDays is resolved to an absolute timestamp now, not stored as a
// relative duration; nil means the invite never expires. maxUses nil means
// unlimited redemptions.
func (s *InviteService) CreateInvite(
	ctx context.Context,
	mapID string,
	createdBy string,
	role domain.Role,
	expiresInDays *int,
	maxUses *int64,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate parameters. Only the editor role is grantable through a
	// shareable link; handing out ownership would bypass the last-owner
	// accounting on leave/delete.
	if role == "" {
		role = domain.RoleEditor
	}
	if role != domain.RoleEditor {
		log.Warn("attempted to create invite with non-editor role",
			slog.String("map_id", mapID),
			slog.String("role", string(role)),
		)
		return domain.Invite{}, ErrInvalidInviteRequest
	}
	if expiresInDays != nil && *expiresInDays < 1 {
		return domain.Invite{}, ErrInvalidInviteRequest
	}
	if maxUses != nil && *maxUses < 1 {
		return domain.Invite{}, ErrInvalidInviteRequest
	}

	// 2. Only map owners may mint invites.
	if err := s.requireOwner(ctx, mapID, createdBy); err != nil {
		return domain.Invite{}, err
	}

	// 3. Generate the random token. The UNIQUE column makes a generation
	// collision a hard storage failure; at 128 bits it does not occur in
	// practice.
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	var expiresAt *time.Time
	if expiresInDays != nil {
		t := time.Now().UTC().Add(time.Duration(*expiresInDays) * 24 * time.Hour)
		expiresAt = &t
	}

	invite := domain.Invite{
		ID:        idx.New().String(),
		MapID:     mapID,
		Token:     token,
		CreatedBy: createdBy,
		Role:      role,
		ExpiresAt: expiresAt,
		MaxUses:   maxUses,
	}

	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("map_id", mapID),
			slog.Any("error", err),
		)
		return domain.Invite{}, err
	}

	log.Debug("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("map_id", mapID),
		slog.String("role", string(role)),
	)

	return invite, nil
}

// ListInvites returns all invites for a map, newest first, including inert
// (expired or exhausted) ones; those are retained for audit. Owner only.
func (s *InviteService) ListInvites(ctx context.Context, mapID, callerID string) ([]domain.Invite, error) {
	if err := s.requireOwner(ctx, mapID, callerID); err != nil {
		return nil, err
	}
	return s.Store.Invites().ListMapInvites(ctx, mapID)
}

// RedeemInvite consumes one use of an invite token and grants the caller
// membership. The whole transition is a single transaction: either the
// membership row is created and use_count incremented, or nothing changes.
//
// Validation short-circuits in order of cost and specificity:
// lookup, expiry, exhaustion, duplicate membership, then the grant itself.
// The pre-checks give precise rejections; the guarded increment inside the
// transaction is what actually enforces use_count <= max_uses under
// concurrent redemption of the same token.
func (s *InviteService) RedeemInvite(ctx context.Context, token, userID string) (JoinResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Input validation, before any lookup.
	token = strings.TrimSpace(token)
	if token == "" || userID == "" {
		log.Warn("invite redemption missing required fields")
		return JoinResult{}, ErrInvalidInviteRequest
	}

	var result JoinResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Look up the invite.
		invite, err := tx.Invites().GetInviteByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("invite redemption attempted with unknown token")
				return ErrInviteNotFound
			}
			return err
		}

		// 3. Expiry wins over remaining capacity.
		if invite.Expired(time.Now().UTC()) {
			log.Warn("invite redemption attempted with expired invite",
				slog.String("invite_id", invite.ID),
			)
			return ErrInviteExpired
		}

		// 4. Exhaustion pre-check for a precise rejection. Not the real
		// guard; ConsumeUse below re-checks atomically.
		if invite.Exhausted() {
			log.Warn("invite redemption attempted with exhausted invite",
				slog.String("invite_id", invite.ID),
			)
			return ErrInviteMaxUses
		}

		// 5. Duplicate membership is a deterministic rejection, which also
		// makes retries after a success safe.
		_, err = tx.Memberships().GetMembership(ctx, invite.MapID, userID)
		if err == nil {
			log.Warn("invite redemption attempted by existing member",
				slog.String("invite_id", invite.ID),
				slog.String("map_id", invite.MapID),
			)
			return ErrAlreadyMember
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 6. Grant: membership insert plus guarded counter increment, both
		// inside this transaction.
		membership := domain.Membership{
			ID:       idx.New().String(),
			MapID:    invite.MapID,
			UserID:   userID,
			Role:     invite.Role,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return err
		}

		if err := tx.Invites().ConsumeUse(ctx, invite.ID); err != nil {
			if errors.Is(err, store.ErrExhausted) {
				// A concurrent redemption took the last slot between the
				// pre-check and here. Rolling back also undoes the
				// membership insert.
				return ErrInviteMaxUses
			}
			return err
		}

		m, err := tx.Maps().GetMapByID(ctx, invite.MapID)
		if err != nil {
			return err
		}

		result = JoinResult{MapID: m.ID, MapName: m.Name, Role: invite.Role}
		return nil
	})
	if err != nil {
		return JoinResult{}, err
	}

	log.Info("invite redeemed",
		slog.String("map_id", result.MapID),
		slog.String("role", string(result.Role)),
	)

	return result, nil
}

// requireOwner verifies callerID holds the owner role on mapID.
func (s *InviteService) requireOwner(ctx context.Context, mapID, callerID string) error {
	m, err := s.Store.Memberships().GetMembership(ctx, mapID, callerID)
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
