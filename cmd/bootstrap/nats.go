package bootstrap

import (
	"context"
	"log/slog"

	"sessionbook/internal/infra/events"
	"sessionbook/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher connects the NATS event mirror. No URL means no publisher;
// the engine runs fine without one.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *events.Publisher {
	conn, cleanup, err := events.Connect(cfg.NATS)
	if err != nil {
		logger.Warn("event publishing disabled, NATS unreachable", "error", err)
		return nil
	}
	if conn == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return events.New(conn, logger)
}
