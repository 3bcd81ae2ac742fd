package bootstrap

import (
	"context"
	"log/slog"

	"sessionbook/internal/infra/journal"
	"sessionbook/internal/pkg/config"

	"go.uber.org/fx"
)

var JournalModule = fx.Module("journal",
	fx.Provide(
		NewJournal,
	),
)

// NewJournal connects the transition journal. A disabled or unreachable
// journal is not fatal: the engine's state is authoritative and the
// journal is a best-effort audit sink.
func NewJournal(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *journal.Journal {
	if !cfg.DB.Enabled {
		return nil
	}

	pool, cleanup, err := journal.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Warn("journal disabled, database unreachable", "error", err)
		return nil
	}

	j := journal.New(pool, logger)
	if err := j.EnsureSchema(context.Background()); err != nil {
		logger.Warn("journal disabled, schema setup failed", "error", err)
		cleanup()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return j
}
