package sqlite

import (
	"context"

	"github.com/wanderlist/wanderlist/internal/api/domain"
)

type membershipsRepo struct {
	q querier
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO map_members (id, map_id, user_id, role, joined_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.MapID, m.UserID, string(m.Role), m.JoinedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, mapID, userID string) (domain.Membership, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, map_id, user_id, role, joined_at
		FROM map_members WHERE map_id = ? AND user_id = ?`, mapID, userID)

	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, mapID, userID string) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM map_members WHERE map_id = ? AND user_id = ?`, mapID, userID)
	return err
}

func (r *membershipsRepo) ListUserMemberships(ctx context.Context, userID string) ([]domain.Membership, error) {
	return r.list(ctx, `
		SELECT id, map_id, user_id, role, joined_at
		FROM map_members WHERE user_id = ? ORDER BY joined_at ASC, id ASC`, userID)
}

func (r *membershipsRepo) ListMapMemberships(ctx context.Context, mapID string) ([]domain.Membership, error) {
	return r.list(ctx, `
		SELECT id, map_id, user_id, role, joined_at
		FROM map_members WHERE map_id = ? ORDER BY joined_at ASC, id ASC`, mapID)
}

func (r *membershipsRepo) CountMapOwners(ctx context.Context, mapID string) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM map_members WHERE map_id = ? AND role = 'owner'`, mapID).Scan(&count)
	return count, err
}

func (r *membershipsRepo) CountUserOwnedMaps(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM map_members WHERE user_id = ? AND role = 'owner'`, userID).Scan(&count)
	return count, err
}

func (r *membershipsRepo) list(ctx context.Context, query string, arg string) ([]domain.Membership, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func scanMembership(row rowScanner) (domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)
	err := row.Scan(&m.ID, &m.MapID, &m.UserID, &role, &m.JoinedAt)
	if err != nil {
		return domain.Membership{}, err
	}
	m.Role = domain.Role(role)
	return m, nil
}
