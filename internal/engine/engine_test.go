//go:build unit

package engine_test

import (
	"context"
	"testing"
	"time"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/request"
	"sessionbook/internal/domain/token"
	"sessionbook/internal/engine"
	"sessionbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// t0 is the fixture's genesis instant; slots are scheduled relative to it.
const t0 = int64(1_700_000_000)

var defaultParams = booking.Params{
	FeeBps:               300,
	LateCancelPenaltyBps: 2000,
	ChallengeBond:        10_000_000,
	ChallengeWindow:      24 * 60 * 60,
	NoAttestBuffer:       24 * 60 * 60,
	DisputeTimeout:       72 * 60 * 60,
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	clock *clock.MockClock
	token *token.MemoryToken
	eng   *engine.Engine

	vault    uuid.UUID
	owner    uuid.UUID
	oracle   uuid.UUID
	treasury uuid.UUID
	host     uuid.UUID
	guest    uuid.UUID
	guest2   uuid.UUID

	// accounts participating in conservation checks
	accounts []uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithParams(t, defaultParams)
}

func newFixtureWithParams(t *testing.T, params booking.Params) *fixture {
	t.Helper()

	f := &fixture{
		t:        t,
		ctx:      context.Background(),
		clock:    clock.NewMockClock(time.Unix(t0, 0).UTC()),
		token:    token.NewMemoryToken(),
		vault:    uuid.New(),
		owner:    uuid.New(),
		oracle:   uuid.New(),
		treasury: uuid.New(),
		host:     uuid.New(),
		guest:    uuid.New(),
		guest2:   uuid.New(),
	}
	f.accounts = []uuid.UUID{f.owner, f.oracle, f.treasury, f.host, f.guest, f.guest2}

	eng, err := engine.New(engine.Config{
		Token:    f.token,
		Clock:    f.clock,
		Vault:    f.vault,
		Owner:    f.owner,
		Oracle:   f.oracle,
		Treasury: f.treasury,
		Params:   params,
	})
	require.NoError(t, err)
	f.eng = eng

	for _, guest := range []uuid.UUID{f.guest, f.guest2} {
		f.token.Mint(guest, 1_000_000_000)
		require.NoError(t, f.token.Approve(guest, f.vault, token.Unlimited))
	}
	return f
}

// newSlot creates a priced slot starting two hours after t0: 60 minutes
// long, 60-minute cancel cutoff, 30-minute minimum overlap.
func (f *fixture) newSlot(price int64) uuid.UUID {
	f.t.Helper()
	id, err := f.eng.CreateSlotWithPrice(f.ctx, f.host, t0+7200, 60, 60, 30, 60, price)
	require.NoError(f.t, err)
	return id
}

func (f *fixture) book(guest, slotID uuid.UUID) uuid.UUID {
	f.t.Helper()
	id, err := f.eng.Book(f.ctx, guest, slotID)
	require.NoError(f.t, err)
	return id
}

func (f *fixture) attest(bookingID uuid.UUID) {
	f.t.Helper()
	require.NoError(f.t, f.eng.Attest(f.ctx, f.oracle, bookingID, booking.OutcomeCompleted, "evidence"))
}

// warpToAttestable moves the clock to the slot's minimum-overlap boundary.
func (f *fixture) warpToAttestable(slotID uuid.UUID) {
	f.t.Helper()
	s, err := f.eng.GetSlot(slotID)
	require.NoError(f.t, err)
	f.clock.SetUnix(s.StartTime + s.MinOverlapMins*60)
}

// assertConservation checks the fund-conservation invariant: totalHeld
// equals all owed balances plus the escrow of every non-terminal record,
// and the vault's token balance covers totalHeld.
func (f *fixture) assertConservation(bookingIDs []uuid.UUID, requestIDs []uuid.UUID) {
	f.t.Helper()

	var committed int64
	for _, acct := range f.accounts {
		committed += f.eng.Owed(acct)
	}
	for _, id := range bookingIDs {
		b, err := f.eng.GetBooking(id)
		require.NoError(f.t, err)
		if b.Status.IsTerminal() {
			continue
		}
		committed += b.Price
		if b.Status == booking.StatusDisputed {
			committed += b.Terms.ChallengeBond
		}
	}
	for _, id := range requestIDs {
		r, err := f.eng.GetRequest(id)
		require.NoError(f.t, err)
		if r.Status == request.StatusOpen {
			committed += r.Price
		}
	}

	assert.Equal(f.t, committed, f.eng.TotalHeld(), "totalHeld must equal owed + live escrow")
	assert.GreaterOrEqual(f.t, f.token.BalanceOf(f.vault), f.eng.TotalHeld(), "vault balance must back totalHeld")
}

func TestFundConservation(t *testing.T) {
	f := newFixture(t)

	// Two bookings on independent slots, one open request.
	slotA := f.newSlot(25_000_000)
	slotB := f.newSlot(10_000_000)
	bkA := f.book(f.guest, slotA)
	bkB := f.book(f.guest2, slotB)
	reqID, err := f.eng.CreateRequest(f.ctx, f.guest, uuid.Nil, t0+10_000, t0+100_000, 45, 5_000_000, t0+50_000)
	require.NoError(t, err)

	bookings := []uuid.UUID{bkA, bkB}
	requests := []uuid.UUID{reqID}
	f.assertConservation(bookings, requests)

	// A: attest then finalize.
	f.warpToAttestable(slotA)
	f.attest(bkA)
	f.assertConservation(bookings, requests)

	bA, err := f.eng.GetBooking(bkA)
	require.NoError(t, err)
	f.clock.SetUnix(bA.FinalizableAt)
	require.NoError(t, f.eng.Finalize(f.ctx, f.guest2, bkA))
	f.assertConservation(bookings, requests)

	// B: attest, challenge, resolve by timeout.
	f.attest(bkB)
	require.NoError(t, f.eng.Challenge(f.ctx, f.guest2, bkB))
	f.assertConservation(bookings, requests)

	bB, err := f.eng.GetBooking(bkB)
	require.NoError(t, err)
	f.clock.SetUnix(bB.DisputedAt + bB.Terms.DisputeTimeout)
	require.NoError(t, f.eng.FinalizeDisputeByTimeout(f.ctx, f.host, bkB))
	f.assertConservation(bookings, requests)

	// Request cancelled, everyone withdraws.
	require.NoError(t, f.eng.CancelRequest(f.ctx, f.guest, reqID))
	f.assertConservation(bookings, requests)

	for _, acct := range f.accounts {
		if f.eng.Owed(acct) == 0 {
			continue
		}
		_, err := f.eng.WithdrawOwed(f.ctx, acct)
		require.NoError(t, err)
		f.assertConservation(bookings, requests)
	}

	assert.Equal(t, int64(0), f.eng.TotalHeld())
	assert.Equal(t, int64(0), f.token.BalanceOf(f.vault))
}

func TestPullOnlySettlement(t *testing.T) {
	f := newFixture(t)

	slotID := f.newSlot(25_000_000)
	bk := f.book(f.guest, slotID)
	f.warpToAttestable(slotID)
	f.attest(bk)

	b, err := f.eng.GetBooking(bk)
	require.NoError(t, err)
	f.clock.SetUnix(b.FinalizableAt)
	require.NoError(t, f.eng.Finalize(f.ctx, f.host, bk))

	// Settlement only credits owed balances; no tokens leave the vault
	// until the recipients pull.
	assert.Equal(t, int64(0), f.token.BalanceOf(f.host))
	assert.Equal(t, int64(0), f.token.BalanceOf(f.treasury))
	assert.Equal(t, int64(25_000_000), f.token.BalanceOf(f.vault))

	hostOwed := f.eng.Owed(f.host)
	got, err := f.eng.WithdrawOwed(f.ctx, f.host)
	require.NoError(t, err)
	assert.Equal(t, hostOwed, got)
	assert.Equal(t, hostOwed, f.token.BalanceOf(f.host))
}
