//go:build unit

package booking_test

import (
	"testing"

	"sessionbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTerms = booking.Terms{
	FeeBps:               300,
	LateCancelPenaltyBps: 2000,
	ChallengeBond:        10_000_000,
	ChallengeWindow:      86_400,
	NoAttestBuffer:       86_400,
	DisputeTimeout:       259_200,
}

func newTestBooking(now int64) *booking.Booking {
	return booking.NewBooking(uuid.New(), uuid.New(), 25_000_000, testTerms, now)
}

func TestNewBooking(t *testing.T) {
	b := newTestBooking(1000)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusAwaitingAttestation, b.Status())
	assert.Equal(t, int64(25_000_000), b.Price())
	assert.Equal(t, testTerms, b.Terms())
	assert.Equal(t, int64(1000), b.CreatedAt())
}

func TestMarkAttested(t *testing.T) {
	const attestableFrom = 5000

	t.Run("sets the challenge window from now", func(t *testing.T) {
		b := newTestBooking(1000)
		require.NoError(t, b.MarkAttested(6000, attestableFrom, booking.OutcomeCompleted, "hash"))

		assert.Equal(t, booking.StatusAttested, b.Status())
		assert.Equal(t, booking.OutcomeCompleted, b.Outcome())
		assert.Equal(t, "hash", b.EvidenceHash())
		assert.Equal(t, int64(6000), b.AttestedAt())
		assert.Equal(t, int64(6000+testTerms.ChallengeWindow), b.FinalizableAt())
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		b := newTestBooking(1000)
		assert.ErrorIs(t, b.MarkAttested(attestableFrom-1, attestableFrom, booking.OutcomeCompleted, ""), booking.ErrTooEarly)
		assert.NoError(t, b.MarkAttested(attestableFrom, attestableFrom, booking.OutcomeCompleted, ""))
	})

	t.Run("invalid outcome", func(t *testing.T) {
		b := newTestBooking(1000)
		assert.ErrorIs(t, b.MarkAttested(6000, attestableFrom, booking.Outcome("partial"), ""), booking.ErrInvalidOutcome)
		assert.Equal(t, booking.StatusAwaitingAttestation, b.Status())
	})

	t.Run("wrong status", func(t *testing.T) {
		b := newTestBooking(1000)
		require.NoError(t, b.MarkCancelled())
		assert.ErrorIs(t, b.MarkAttested(6000, attestableFrom, booking.OutcomeCompleted, ""), booking.ErrInvalidStatus)
	})
}

func TestDisputeTransitions(t *testing.T) {
	attested := func(t *testing.T) *booking.Booking {
		t.Helper()
		b := newTestBooking(1000)
		require.NoError(t, b.MarkAttested(6000, 5000, booking.OutcomeCompleted, ""))
		return b // finalizableAt = 6000 + 86,400
	}

	t.Run("dispute inside the window", func(t *testing.T) {
		b := attested(t)
		require.NoError(t, b.MarkDisputed(b.FinalizableAt()-1))
		assert.Equal(t, booking.StatusDisputed, b.Status())
		assert.Equal(t, b.FinalizableAt()-1, b.DisputedAt())
	})

	t.Run("window closes at finalizableAt", func(t *testing.T) {
		b := attested(t)
		assert.ErrorIs(t, b.CanDispute(b.FinalizableAt()), booking.ErrWindowClosed)
	})

	t.Run("finalize only after the window", func(t *testing.T) {
		b := attested(t)
		assert.ErrorIs(t, b.MarkFinalized(b.FinalizableAt()-1), booking.ErrTooEarly)
		assert.NoError(t, b.MarkFinalized(b.FinalizableAt()))
		assert.Equal(t, booking.StatusFinalized, b.Status())
		assert.True(t, b.Status().IsTerminal())
	})

	t.Run("timeout resolution", func(t *testing.T) {
		b := attested(t)
		require.NoError(t, b.MarkDisputed(7000))

		assert.ErrorIs(t, b.MarkResolvedByTimeout(7000+testTerms.DisputeTimeout-1), booking.ErrTooEarly)
		assert.NoError(t, b.MarkResolvedByTimeout(7000+testTerms.DisputeTimeout))
		assert.Equal(t, booking.StatusResolved, b.Status())
	})

	t.Run("disputed booking cannot finalize normally", func(t *testing.T) {
		b := attested(t)
		require.NoError(t, b.MarkDisputed(7000))
		assert.ErrorIs(t, b.MarkFinalized(b.FinalizableAt()), booking.ErrInvalidStatus)
	})
}

func TestMarkClaimedUnattested(t *testing.T) {
	const sessionEnd = 9000

	t.Run("strict boundary", func(t *testing.T) {
		b := newTestBooking(1000)
		deadline := int64(sessionEnd + testTerms.NoAttestBuffer)
		assert.ErrorIs(t, b.MarkClaimedUnattested(deadline, sessionEnd), booking.ErrTooEarly)
		assert.NoError(t, b.MarkClaimedUnattested(deadline+1, sessionEnd))
		assert.True(t, b.Status().IsTerminal())
	})

	t.Run("attested booking cannot be claimed", func(t *testing.T) {
		b := newTestBooking(1000)
		require.NoError(t, b.MarkAttested(6000, 5000, booking.OutcomeCompleted, ""))
		assert.ErrorIs(t, b.MarkClaimedUnattested(sessionEnd+testTerms.NoAttestBuffer+1, sessionEnd), booking.ErrInvalidStatus)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[booking.Status]bool{
		booking.StatusAwaitingAttestation: false,
		booking.StatusAttested:            false,
		booking.StatusDisputed:            false,
		booking.StatusFinalized:           true,
		booking.StatusResolved:            true,
		booking.StatusCancelled:           true,
	}
	for status, want := range terminal {
		assert.Equal(t, want, status.IsTerminal(), string(status))
	}
}
