package engine

import (
	"context"
	"log/slog"
	"sync"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/request"
	"sessionbook/internal/domain/slot"
	"sessionbook/internal/domain/token"
	"sessionbook/internal/pkg/clock"
	"sessionbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Recorder receives every committed state transition. Implementations are
// best-effort sinks (journal, event bus); a Recorder failure is logged and
// never unwinds a settled call.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// Event is one committed transition.
type Event struct {
	Kind    string    `json:"kind"`
	At      int64     `json:"at"`
	Actor   uuid.UUID `json:"actor"`
	Subject uuid.UUID `json:"subject"`
	Amount  int64     `json:"amount,omitempty"`
}

type pairKey struct {
	slotID uuid.UUID
	guest  uuid.UUID
}

// Engine is the booking-and-escrow state machine. One mutex serializes
// every entry point: each call observes a consistent pre-state, runs its
// guards, moves funds through the payment token, then mutates. A call that
// fails any step leaves no effect.
type Engine struct {
	mu    sync.Mutex
	clock clock.Clock
	token token.Token
	log   *slog.Logger

	// vault is the engine's own token account: everything escrowed or owed
	// sits on this balance.
	vault        uuid.UUID
	owner        uuid.UUID
	pendingOwner uuid.UUID
	oracle       uuid.UUID
	treasury     uuid.UUID

	params    booking.Params
	basePrice map[uuid.UUID]int64

	slots    map[uuid.UUID]*slot.Slot
	requests map[uuid.UUID]*request.Request
	bookings map[uuid.UUID]*booking.Booking
	byPair   map[pairKey]uuid.UUID

	owed      map[uuid.UUID]int64
	totalHeld int64

	sinks []Recorder
}

type Config struct {
	Token    token.Token
	Clock    clock.Clock
	Vault    uuid.UUID
	Owner    uuid.UUID
	Oracle   uuid.UUID
	Treasury uuid.UUID
	Params   booking.Params
	Sinks    []Recorder
	Logger   *slog.Logger
}

func New(cfg Config) (*Engine, error) {
	if cfg.Token == nil {
		return nil, errs.New("engine: token is required")
	}
	if cfg.Clock == nil {
		return nil, errs.New("engine: clock is required")
	}
	if cfg.Vault == uuid.Nil || cfg.Owner == uuid.Nil || cfg.Oracle == uuid.Nil || cfg.Treasury == uuid.Nil {
		return nil, errs.New("engine: vault, owner, oracle and treasury accounts are required")
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, errs.Wrap(err, "engine: invalid initial params")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		clock:     cfg.Clock,
		token:     cfg.Token,
		log:       logger,
		vault:     cfg.Vault,
		owner:     cfg.Owner,
		oracle:    cfg.Oracle,
		treasury:  cfg.Treasury,
		params:    cfg.Params,
		basePrice: make(map[uuid.UUID]int64),
		slots:     make(map[uuid.UUID]*slot.Slot),
		requests:  make(map[uuid.UUID]*request.Request),
		bookings:  make(map[uuid.UUID]*booking.Booking),
		byPair:    make(map[pairKey]uuid.UUID),
		owed:      make(map[uuid.UUID]int64),
		sinks:     cfg.Sinks,
	}, nil
}

func (e *Engine) now() int64 {
	return e.clock.Now().Unix()
}

// credit moves already-held escrow into an account's owed balance.
// totalHeld does not change: the tokens stay on the vault until withdrawn.
func (e *Engine) credit(account uuid.UUID, amount int64) {
	if amount == 0 {
		return
	}
	e.owed[account] += amount
}

// pull escrows amount from payer onto the vault and grows totalHeld.
func (e *Engine) pull(payer uuid.UUID, amount int64) error {
	if err := e.token.TransferFrom(e.vault, payer, e.vault, amount); err != nil {
		return failWrap(CodeFunds, "escrow transfer failed", err)
	}
	e.totalHeld += amount
	return nil
}

func (e *Engine) emit(ctx context.Context, kind string, actor, subject uuid.UUID, amount int64) {
	if len(e.sinks) == 0 {
		return
	}
	ev := Event{Kind: kind, At: e.now(), Actor: actor, Subject: subject, Amount: amount}
	for _, s := range e.sinks {
		if err := s.Record(ctx, ev); err != nil {
			e.log.Warn("event sink failed", "kind", kind, "error", err)
		}
	}
}
