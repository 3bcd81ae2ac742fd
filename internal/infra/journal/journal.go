package journal

import (
	"context"
	"log/slog"

	"sessionbook/internal/engine"
	"sessionbook/internal/pkg/config"
	"sessionbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The journal is an append-only audit trail of engine transitions. The
// engine's in-memory state is the source of truth; journal rows are written
// post-commit and a write failure is logged by the engine, never surfaced
// to the caller whose state change already settled.

const schema = `
CREATE TABLE IF NOT EXISTS transitions (
    id      BIGSERIAL PRIMARY KEY,
    kind    TEXT        NOT NULL,
    at      BIGINT      NOT NULL,
    actor   UUID        NOT NULL,
    subject UUID        NOT NULL,
    amount  BIGINT      NOT NULL DEFAULT 0,
    written TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}
	cleanup := func() { pool.Close() }
	return pool, cleanup, nil
}

type Journal struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(pool *pgxpool.Pool, logger *slog.Logger) *Journal {
	return &Journal{pool: pool, log: logger}
}

// EnsureSchema creates the transitions table if missing. The table is
// append-only; there is nothing to migrate.
func (j *Journal) EnsureSchema(ctx context.Context) error {
	_, err := j.pool.Exec(ctx, schema)
	return errs.Wrap(err, "failed to ensure journal schema")
}

func (j *Journal) Record(ctx context.Context, ev engine.Event) error {
	_, err := j.pool.Exec(ctx,
		`INSERT INTO transitions (kind, at, actor, subject, amount) VALUES ($1, $2, $3, $4, $5)`,
		ev.Kind, ev.At, ev.Actor, ev.Subject, ev.Amount,
	)
	return errs.Wrap(err, "failed to record transition")
}

// Tail returns the most recent transitions, newest first.
func (j *Journal) Tail(ctx context.Context, limit int32) ([]engine.Event, error) {
	rows, err := j.pool.Query(ctx,
		`SELECT kind, at, actor, subject, amount FROM transitions ORDER BY id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read journal")
	}
	defer rows.Close()

	var out []engine.Event
	for rows.Next() {
		var ev engine.Event
		if err := rows.Scan(&ev.Kind, &ev.At, &ev.Actor, &ev.Subject, &ev.Amount); err != nil {
			return nil, errs.Wrap(err, "failed to scan transition")
		}
		out = append(out, ev)
	}
	return out, errs.Wrap(rows.Err(), "failed to iterate journal")
}
