package engine

import (
	"context"

	"github.com/google/uuid"
)

// Challenge lets the guest dispute an attested outcome while the challenge
// window is open. The bond pulled is the one snapshotted at booking time,
// not the current global bond.
func (e *Engine) Challenge(ctx context.Context, caller, bookingID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	if caller != b.Guest() {
		return fail(CodeUnauthorized, "only the booking guest may challenge")
	}
	now := e.now()
	if err := b.CanDispute(now); err != nil {
		return transitionErr(err, "challenge")
	}
	bond := b.Terms().ChallengeBond
	if err := e.pull(caller, bond); err != nil {
		return err
	}
	// Guards passed and bond held; the transition cannot fail now.
	_ = b.MarkDisputed(now)
	e.emit(ctx, "booking.challenged", caller, b.ID(), bond)
	return nil
}

// Finalize settles an attested, unchallenged booking once the window has
// closed. Callable by anyone. Uses the snapshotted feeBps: later setter
// calls never change what an in-flight booking pays.
func (e *Engine) Finalize(ctx context.Context, caller, bookingID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	s, ok := e.slots[b.SlotID()]
	if !ok {
		return fail(CodeNotFound, "slot not found")
	}
	if err := b.MarkFinalized(e.now()); err != nil {
		return transitionErr(err, "finalize")
	}
	price := b.Price()
	fee := b.Terms().Fee(price)
	e.credit(s.Host(), price-fee)
	e.credit(e.treasury, fee)
	e.emit(ctx, "booking.finalized", caller, b.ID(), price)
	return nil
}

// FinalizeDisputeByTimeout closes a dispute the resolution authority never
// acted on. Callable by anyone once disputedAt + the snapshotted
// disputeTimeout has passed. The default rule protects the party at risk:
// the guest is credited the full price plus the returned bond; no fee is
// taken on this path.
func (e *Engine) FinalizeDisputeByTimeout(ctx context.Context, caller, bookingID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	if err := b.MarkResolvedByTimeout(e.now()); err != nil {
		return transitionErr(err, "finalize dispute")
	}
	e.credit(b.Guest(), b.Price()+b.Terms().ChallengeBond)
	e.emit(ctx, "dispute.resolved_timeout", caller, b.ID(), b.Price()+b.Terms().ChallengeBond)
	return nil
}

// ClaimIfUnattested refunds the guest in full when the oracle never
// attested. The guard is strict: a claim at exactly sessionEnd+buffer is
// still too early.
func (e *Engine) ClaimIfUnattested(ctx context.Context, caller, bookingID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[bookingID]
	if !ok {
		return fail(CodeNotFound, "booking not found")
	}
	if caller != b.Guest() {
		return fail(CodeUnauthorized, "only the booking guest may claim")
	}
	s, ok := e.slots[b.SlotID()]
	if !ok {
		return fail(CodeNotFound, "slot not found")
	}
	if err := b.MarkClaimedUnattested(e.now(), s.End()); err != nil {
		return transitionErr(err, "claim unattested")
	}
	e.credit(b.Guest(), b.Price())
	e.emit(ctx, "booking.claimed_unattested", caller, b.ID(), b.Price())
	return nil
}
