package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/audit"
)

type AuditRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAuditRepository(pool *pgxpool.Pool, log *slog.Logger) *AuditRepository {
	return &AuditRepository{
		pool: pool,
		log:  log.With("component", "audit_repository"),
	}
}

func (r *AuditRepository) Insert(ctx context.Context, actorID int, action, details string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO access_log (actor_id, action, details) VALUES ($1, $2, $3)`,
		actorID, action, details)
	return err
}

// List returns entries newest first, joined with the actor's login for
// display. limit <= 0 means no limit.
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]audit.Entry, error) {
	query := `
		SELECT l.id, l.actor_id, COALESCE(u.login, ''), l.action, l.details, l.created_at
		FROM access_log l
		LEFT JOIN users u ON u.id = l.actor_id
		ORDER BY l.created_at DESC`

	args := []interface{}{}
	argIndex := 1

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++

		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, offset)
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorName, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
