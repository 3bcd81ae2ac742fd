package engine

import (
	"context"

	"sessionbook/internal/domain/booking"

	"github.com/google/uuid"
)

// Book escrows the slot price from the caller and opens a booking in the
// awaiting-attestation state, snapshotting the current BookingTerms.
// Exactly one booking may exist per (slot, guest) pair; the same slot may
// be booked by distinct guests, each with its own escrow.
func (e *Engine) Book(ctx context.Context, caller, slotID uuid.UUID) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.slots[slotID]
	if !ok {
		return uuid.Nil, fail(CodeNotFound, "slot not found")
	}
	if caller == s.Host() {
		return uuid.Nil, fail(CodeSelfDealing, "host cannot book own slot")
	}
	key := pairKey{slotID, caller}
	if _, dup := e.byPair[key]; dup {
		return uuid.Nil, fail(CodeBadState, "slot already booked by this guest")
	}

	price := e.effectivePrice(s)
	if err := e.pull(caller, price); err != nil {
		return uuid.Nil, err
	}

	b := booking.NewBooking(slotID, caller, price, e.params.Snapshot(), e.now())
	e.bookings[b.ID()] = b
	e.byPair[key] = b.ID()
	e.emit(ctx, "booking.booked", caller, b.ID(), price)
	return b.ID(), nil
}

// CancelBookingAsGuest cancels an unattested booking. On-time (now at or
// before the cutoff) refunds the full price. Late cancellation forfeits
// penalty = price*lateCancelPenaltyBps/BPS, of which the treasury takes
// fee = penalty*feeBps/BPS and the host keeps the rest; the guest is
// refunded price-penalty. All credits are owed balances, nothing is pushed.
func (e *Engine) CancelBookingAsGuest(ctx context.Context, caller, bookingID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	if caller != b.Guest() {
		return fail(CodeUnauthorized, "only the booking guest may cancel")
	}
	s, ok := e.slots[b.SlotID()]
	if !ok {
		return fail(CodeNotFound, "slot not found")
	}
	if err := b.MarkCancelled(); err != nil {
		return transitionErr(err, "cancel booking")
	}

	now := e.now()
	terms := b.Terms()
	price := b.Price()
	if now > s.CancelCutoff() {
		penalty := terms.LateCancelPenalty(price)
		fee := terms.Fee(penalty)
		e.credit(s.Host(), penalty-fee)
		e.credit(e.treasury, fee)
		e.credit(b.Guest(), price-penalty)
	} else {
		e.credit(b.Guest(), price)
	}
	e.emit(ctx, "booking.cancelled", caller, b.ID(), price)
	return nil
}
