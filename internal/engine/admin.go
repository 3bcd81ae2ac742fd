package engine

import (
	"context"

	"github.com/google/uuid"
)

// The global parameter setters affect only the snapshots of future
// bookings; an existing booking's Terms never change.

func (e *Engine) SetFeeBps(ctx context.Context, caller uuid.UUID, v int64) error {
	return e.setParam(ctx, caller, "fee_bps", func() { e.params.FeeBps = v })
}

func (e *Engine) SetLateCancelPenaltyBps(ctx context.Context, caller uuid.UUID, v int64) error {
	return e.setParam(ctx, caller, "late_cancel_penalty_bps", func() { e.params.LateCancelPenaltyBps = v })
}

func (e *Engine) SetChallengeBond(ctx context.Context, caller uuid.UUID, v int64) error {
	return e.setParam(ctx, caller, "challenge_bond", func() { e.params.ChallengeBond = v })
}

func (e *Engine) SetChallengeWindow(ctx context.Context, caller uuid.UUID, seconds int64) error {
	return e.setParam(ctx, caller, "challenge_window", func() { e.params.ChallengeWindow = seconds })
}

func (e *Engine) SetNoAttestBuffer(ctx context.Context, caller uuid.UUID, seconds int64) error {
	return e.setParam(ctx, caller, "no_attest_buffer", func() { e.params.NoAttestBuffer = seconds })
}

func (e *Engine) SetDisputeTimeout(ctx context.Context, caller uuid.UUID, seconds int64) error {
	return e.setParam(ctx, caller, "dispute_timeout", func() { e.params.DisputeTimeout = seconds })
}

func (e *Engine) setParam(ctx context.Context, caller uuid.UUID, name string, apply func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return fail(CodeUnauthorized, "only the owner may set parameters")
	}
	prev := e.params
	apply()
	if err := e.params.Validate(); err != nil {
		e.params = prev
		return failWrap(CodeInvalidInput, "invalid parameter value", err)
	}
	e.emit(ctx, "params."+name, caller, uuid.Nil, 0)
	return nil
}

// TransferOwnership records a pending owner without changing the active
// owner. The transfer completes only when the candidate accepts, so a
// mistyped or unreachable account can never take the setters hostage.
func (e *Engine) TransferOwnership(ctx context.Context, caller, candidate uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return fail(CodeUnauthorized, "only the owner may transfer ownership")
	}
	if candidate == uuid.Nil {
		return fail(CodeInvalidInput, "candidate cannot be the zero account")
	}
	e.pendingOwner = candidate
	e.emit(ctx, "ownership.proposed", caller, candidate, 0)
	return nil
}

// AcceptOwnership completes a pending transfer. The previous owner loses
// setter privileges the moment this returns.
func (e *Engine) AcceptOwnership(ctx context.Context, caller uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendingOwner == uuid.Nil || caller != e.pendingOwner {
		return fail(CodeUnauthorized, "caller is not the pending owner")
	}
	e.owner = caller
	e.pendingOwner = uuid.Nil
	e.emit(ctx, "ownership.accepted", caller, caller, 0)
	return nil
}
