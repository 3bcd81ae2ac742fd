package engine

import (
	"context"

	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/request"
	"sessionbook/internal/domain/slot"

	"github.com/google/uuid"
)

// CreateRequest escrows price from the caller and opens a request any
// qualifying host may accept (host == uuid.Nil means any host). The
// transfer is atomic with record creation: if the pull fails, no record
// exists.
func (e *Engine) CreateRequest(ctx context.Context, caller, host uuid.UUID, windowStart, windowEnd, durationMins, price, deadline int64) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := request.NewRequest(caller, host, windowStart, windowEnd, durationMins, price, deadline)
	if err != nil {
		return uuid.Nil, failWrap(CodeInvalidInput, "invalid request", err)
	}
	if err := e.pull(caller, price); err != nil {
		return uuid.Nil, err
	}
	e.requests[r.ID()] = r
	e.emit(ctx, "request.created", caller, r.ID(), price)
	return r.ID(), nil
}

// CancelRequest refunds an un-accepted request to the guest's owed balance.
func (e *Engine) CancelRequest(ctx context.Context, caller, requestID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[requestID]
	if !ok {
		return fail(CodeNotFound, "request not found")
	}
	if caller != r.Guest() {
		return fail(CodeUnauthorized, "only the requesting guest may cancel")
	}
	if err := r.Cancel(); err != nil {
		return transitionErr(err, "cancel request")
	}
	e.credit(r.Guest(), r.Price())
	e.emit(ctx, "request.cancelled", caller, r.ID(), r.Price())
	return nil
}

// AcceptRequest converts an open request into a slot plus a funded booking
// in one step, consuming the request. The accepting host becomes the
// slot's host; the escrow already held for the request backs the booking.
// BookingTerms are snapshotted here, at booking creation.
func (e *Engine) AcceptRequest(ctx context.Context, caller, requestID uuid.UUID, startTime, cancelCutoffMins, minOverlapMins, reserved int64) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[requestID]
	if !ok {
		return uuid.Nil, fail(CodeNotFound, "request not found")
	}
	if caller == r.Guest() {
		return uuid.Nil, fail(CodeSelfDealing, "guest cannot accept own request")
	}
	if !r.AnyHost() && caller != r.Host() {
		return uuid.Nil, fail(CodeUnauthorized, "request is addressed to another host")
	}
	if !r.IsOpen() {
		return uuid.Nil, fail(CodeBadState, "request already accepted or cancelled")
	}
	now := e.now()
	if now > r.Deadline() {
		return uuid.Nil, fail(CodeWindowClosed, "request deadline passed")
	}
	if startTime < r.WindowStart() || startTime+r.DurationMins()*60 > r.WindowEnd() {
		return uuid.Nil, fail(CodeInvalidInput, "session does not fit the requested window")
	}

	s, err := slot.NewSlotWithPrice(caller, startTime, r.DurationMins(), cancelCutoffMins, minOverlapMins, reserved, r.Price())
	if err != nil {
		return uuid.Nil, failWrap(CodeInvalidInput, "invalid slot", err)
	}

	// All guards passed; mutations below cannot fail.
	_ = r.Accept()
	b := booking.NewBooking(s.ID(), r.Guest(), r.Price(), e.params.Snapshot(), now)
	e.slots[s.ID()] = s
	e.bookings[b.ID()] = b
	e.byPair[pairKey{s.ID(), r.Guest()}] = b.ID()

	e.emit(ctx, "request.accepted", caller, r.ID(), r.Price())
	e.emit(ctx, "booking.booked", r.Guest(), b.ID(), r.Price())
	return b.ID(), nil
}
