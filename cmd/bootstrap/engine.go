package bootstrap

import (
	"log/slog"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/token"
	"sessionbook/internal/engine"
	"sessionbook/internal/infra/events"
	"sessionbook/internal/infra/journal"
	"sessionbook/internal/pkg/clock"
	"sessionbook/internal/pkg/config"
	"sessionbook/internal/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		NewToken,
		NewEngine,
	),
)

// NewToken provides the payment token. The single-process deployment uses
// the in-memory token; a chain-backed deployment substitutes its own
// implementation here.
func NewToken() token.Token {
	return token.NewMemoryToken()
}

func NewEngine(
	cfg config.Config,
	tok token.Token,
	clk clock.Clock,
	j *journal.Journal,
	pub *events.Publisher,
	logger *slog.Logger,
) (*engine.Engine, error) {
	owner, err := uuid.Parse(cfg.Engine.Owner)
	if err != nil {
		return nil, errs.Wrap(err, "invalid ENGINE_OWNER")
	}
	oracle, err := uuid.Parse(cfg.Engine.Oracle)
	if err != nil {
		return nil, errs.Wrap(err, "invalid ENGINE_ORACLE")
	}
	treasury, err := uuid.Parse(cfg.Engine.Treasury)
	if err != nil {
		return nil, errs.Wrap(err, "invalid ENGINE_TREASURY")
	}

	var sinks []engine.Recorder
	if j != nil {
		sinks = append(sinks, j)
	}
	if pub != nil {
		sinks = append(sinks, pub)
	}

	return engine.New(engine.Config{
		Token:    tok,
		Clock:    clk,
		Vault:    uuid.New(),
		Owner:    owner,
		Oracle:   oracle,
		Treasury: treasury,
		Params: booking.Params{
			FeeBps:               cfg.Engine.FeeBps,
			LateCancelPenaltyBps: cfg.Engine.LateCancelPenaltyBps,
			ChallengeBond:        cfg.Engine.ChallengeBond,
			ChallengeWindow:      int64(cfg.Engine.ChallengeWindow.Seconds()),
			NoAttestBuffer:       int64(cfg.Engine.NoAttestBuffer.Seconds()),
			DisputeTimeout:       int64(cfg.Engine.DisputeTimeout.Seconds()),
		},
		Sinks:  sinks,
		Logger: logger,
	})
}
