package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
)

type profilesRepo struct {
	q querier
}

func (r *profilesRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var (
		p           domain.Profile
		entitlement string
		activeMap   sql.NullString
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, display_name, entitlement, active_map_id, created_at, updated_at
		FROM profiles WHERE id = ?`, id).
		Scan(&p.ID, &p.DisplayName, &entitlement, &activeMap, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	p.Entitlement = domain.Entitlement(entitlement)
	p.ActiveMapID = mapNullStringPtr(activeMap)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, display_name, entitlement, active_map_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.DisplayName, string(p.Entitlement), mapOptionalString(p.ActiveMapID), now, now,
	)
	return mapConstraint(err)
}

func (r *profilesRepo) UpdateActiveMap(ctx context.Context, userID string, mapID *string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET active_map_id = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(mapID), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *profilesRepo) ClearDanglingActiveMaps(ctx context.Context) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET active_map_id = NULL, updated_at = ?
		WHERE active_map_id IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM map_members
			WHERE map_members.map_id = profiles.active_map_id
			  AND map_members.user_id = profiles.id
		  )`,
		time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
