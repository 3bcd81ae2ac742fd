package engine

import (
	"context"

	"sessionbook/internal/domain/booking"

	"github.com/google/uuid"
)

// Attest records the oracle's verdict for a booking that is awaiting
// attestation. Valid only once the minimum overlap into the session has
// elapsed. Opens the challenge window: finalizableAt = now + the booking's
// snapshotted challengeWindow.
func (e *Engine) Attest(ctx context.Context, caller, bookingID uuid.UUID, outcome booking.Outcome, evidenceHash string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.oracle {
		return fail(CodeUnauthorized, "only the oracle may attest")
	}
	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	s, ok := e.slots[b.SlotID()]
	if !ok {
		return fail(CodeNotFound, "slot not found")
	}
	if err := b.MarkAttested(e.now(), s.AttestableFrom(), outcome, evidenceHash); err != nil {
		return transitionErr(err, "attest")
	}
	e.emit(ctx, "booking.attested", caller, b.ID(), 0)
	return nil
}
