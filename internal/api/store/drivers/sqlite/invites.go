package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
)

type invitesRepo struct {
	q querier
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO map_invites (id, map_id, token, created_by, role, expires_at, max_uses, use_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		inv.ID, inv.MapID, inv.Token, inv.CreatedBy, string(inv.Role),
		mapOptionalTime(inv.ExpiresAt), mapOptionalInt64(inv.MaxUses), now, now,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, map_id, token, created_by, role, expires_at, max_uses, use_count, created_at, updated_at
		FROM map_invites WHERE token = ?`, token)

	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListMapInvites(ctx context.Context, mapID string) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, map_id, token, created_by, role, expires_at, max_uses, use_count, created_at, updated_at
		FROM map_invites WHERE map_id = ? ORDER BY created_at DESC`, mapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

// ConsumeUse is the compare-and-swap at the heart of redemption: the WHERE
// clause re-checks remaining capacity inside the same statement that
// increments, so two racing redemptions can never both take the last slot.
func (r *invitesRepo) ConsumeUse(ctx context.Context, inviteID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE map_invites
		SET use_count = use_count + 1, updated_at = ?
		WHERE id = ? AND (max_uses IS NULL OR use_count < max_uses)`,
		time.Now().UTC(), inviteID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrExhausted
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv       domain.Invite
		role      string
		expiresAt sql.NullTime
		maxUses   sql.NullInt64
	)
	err := row.Scan(
		&inv.ID, &inv.MapID, &inv.Token, &inv.CreatedBy, &role,
		&expiresAt, &maxUses, &inv.UseCount, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, err
	}

	inv.Role = domain.Role(role)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	inv.MaxUses = mapNullInt64Ptr(maxUses)
	return inv, nil
}
