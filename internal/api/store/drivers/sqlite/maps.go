package sqlite

import (
	"context"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
)

type mapsRepo struct {
	q querier
}

func (r *mapsRepo) GetMapByID(ctx context.Context, id string) (domain.Map, error) {
	var m domain.Map
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, created_by, created_at, updated_at
		FROM maps WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Map{}, mapNotFound(err)
	}
	return m, nil
}

func (r *mapsRepo) CreateMap(ctx context.Context, m domain.Map) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO maps (id, name, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.CreatedBy, now, now,
	)
	return mapConstraint(err)
}

func (r *mapsRepo) UpdateMapName(ctx context.Context, mapID string, name string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE maps SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), mapID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *mapsRepo) DeleteMap(ctx context.Context, mapID string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM maps WHERE id = ?`, mapID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
