//go:build unit

package engine_test

import (
	"testing"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook(t *testing.T) {
	t.Run("escrows the price and snapshots terms", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)

		id, err := f.eng.Book(f.ctx, f.guest, slotID)
		require.NoError(t, err)

		b, err := f.eng.GetBooking(id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusAwaitingAttestation, b.Status)
		assert.Equal(t, int64(25_000_000), b.Price)
		assert.Equal(t, defaultParams.Snapshot(), b.Terms)
		assert.Equal(t, int64(25_000_000), f.eng.TotalHeld())
		assert.Equal(t, int64(1_000_000_000-25_000_000), f.token.BalanceOf(f.guest))
	})

	t.Run("host cannot book own slot", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)

		_, err := f.eng.Book(f.ctx, f.host, slotID)
		assert.True(t, engine.IsCode(err, engine.CodeSelfDealing))
	})

	t.Run("one booking per slot and guest pair", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		f.book(f.guest, slotID)

		_, err := f.eng.Book(f.ctx, f.guest, slotID)
		assert.True(t, engine.IsCode(err, engine.CodeBadState))

		// A different guest gets an independent escrow on the same slot.
		_, err = f.eng.Book(f.ctx, f.guest2, slotID)
		require.NoError(t, err)
		assert.Equal(t, int64(50_000_000), f.eng.TotalHeld())
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.eng.Book(f.ctx, f.guest, f.vault)
		assert.True(t, engine.IsCode(err, engine.CodeNotFound))
	})

	t.Run("failed pull leaves no record", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(2_000_000_000) // beyond the guest's balance

		_, err := f.eng.Book(f.ctx, f.guest, slotID)
		assert.True(t, engine.IsCode(err, engine.CodeFunds))
		assert.Equal(t, int64(0), f.eng.TotalHeld())
		assert.Equal(t, int64(0), f.token.BalanceOf(f.vault))

		// The pair is still free.
		require.NoError(t, f.eng.SetHostBasePrice(f.ctx, f.host, 0))
	})

	t.Run("unpriced slot resolves the host base price at booking time", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.eng.CreateSlot(f.ctx, f.host, t0+7200, 60, 60, 30, 0)
		require.NoError(t, err)
		require.NoError(t, f.eng.SetHostBasePrice(f.ctx, f.host, 7_500_000))

		bk := f.book(f.guest, id)
		b, err := f.eng.GetBooking(bk)
		require.NoError(t, err)
		assert.Equal(t, int64(7_500_000), b.Price)

		// Raising the base price afterwards does not touch the booking.
		require.NoError(t, f.eng.SetHostBasePrice(f.ctx, f.host, 9_000_000))
		b, err = f.eng.GetBooking(bk)
		require.NoError(t, err)
		assert.Equal(t, int64(7_500_000), b.Price)
	})
}

func TestCancelBookingAsGuest(t *testing.T) {
	// Fixture slot: start t0+7200, cutoff 60m before start, so the
	// on-time/late boundary sits at t0+3600.
	const cutoff = t0 + 3600

	t.Run("on-time cancel refunds the full price", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		bk := f.book(f.guest, slotID)

		f.clock.SetUnix(cutoff) // exactly at the cutoff is still on time
		require.NoError(t, f.eng.CancelBookingAsGuest(f.ctx, f.guest, bk))

		assert.Equal(t, int64(25_000_000), f.eng.Owed(f.guest))
		assert.Equal(t, int64(0), f.eng.Owed(f.host))
		assert.Equal(t, int64(0), f.eng.Owed(f.treasury))
	})

	t.Run("late cancel splits the penalty", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		bk := f.book(f.guest, slotID)

		f.clock.SetUnix(cutoff + 1)
		require.NoError(t, f.eng.CancelBookingAsGuest(f.ctx, f.guest, bk))

		// penalty = 25,000,000 * 2000 / 10,000 = 5,000,000
		// fee     =  5,000,000 *  300 / 10,000 =   150,000
		assert.Equal(t, int64(4_850_000), f.eng.Owed(f.host))
		assert.Equal(t, int64(150_000), f.eng.Owed(f.treasury))
		assert.Equal(t, int64(20_000_000), f.eng.Owed(f.guest))

		b, err := f.eng.GetBooking(bk)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status)
	})

	t.Run("only the guest may cancel", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		bk := f.book(f.guest, slotID)

		err := f.eng.CancelBookingAsGuest(f.ctx, f.host, bk)
		assert.True(t, engine.IsCode(err, engine.CodeUnauthorized))
	})

	t.Run("cannot cancel after attestation", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		bk := f.book(f.guest, slotID)
		f.warpToAttestable(slotID)
		f.attest(bk)

		err := f.eng.CancelBookingAsGuest(f.ctx, f.guest, bk)
		assert.True(t, engine.IsCode(err, engine.CodeBadState))
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.newSlot(25_000_000)
		bk := f.book(f.guest, slotID)
		require.NoError(t, f.eng.CancelBookingAsGuest(f.ctx, f.guest, bk))

		err := f.eng.CancelBookingAsGuest(f.ctx, f.guest, bk)
		assert.True(t, engine.IsCode(err, engine.CodeBadState))
		// The refund was credited once.
		assert.Equal(t, int64(25_000_000), f.eng.Owed(f.guest))
	})
}
