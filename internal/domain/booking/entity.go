package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("operation not allowed in current status")
	ErrTooEarly       = errors.New("too early")
	ErrWindowClosed   = errors.New("window closed")
	ErrInvalidOutcome = errors.New("invalid outcome")
)

// Booking is one funded (slot, guest) commitment. The price and the Terms
// are captured at creation and drive every later settlement, so admin
// parameter changes never reach an in-flight booking.
type Booking struct {
	id            uuid.UUID
	slotID        uuid.UUID
	guest         uuid.UUID
	price         int64
	status        Status
	terms         Terms
	outcome       Outcome
	evidenceHash  string
	attestedAt    int64
	finalizableAt int64
	disputedAt    int64
	createdAt     int64
}

func NewBooking(slotID, guest uuid.UUID, price int64, terms Terms, now int64) *Booking {
	return &Booking{
		id:        uuid.New(),
		slotID:    slotID,
		guest:     guest,
		price:     price,
		status:    StatusAwaitingAttestation,
		terms:     terms,
		createdAt: now,
	}
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) SlotID() uuid.UUID { return b.slotID }
func (b *Booking) Guest() uuid.UUID { return b.guest }
func (b *Booking) Price() int64 { return b.price }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) Terms() Terms { return b.terms }
func (b *Booking) Outcome() Outcome { return b.outcome }
func (b *Booking) EvidenceHash() string { return b.evidenceHash }
func (b *Booking) AttestedAt() int64 { return b.attestedAt }
func (b *Booking) FinalizableAt() int64 { return b.finalizableAt }
func (b *Booking) DisputedAt() int64 { return b.disputedAt }
func (b *Booking) CreatedAt() int64 { return b.createdAt }

// MarkAttested records the oracle verdict and opens the challenge window.
// attestableFrom is slot.startTime + minOverlapMins*60; the oracle may not
// report before the minimum overlap has elapsed.
func (b *Booking) MarkAttested(now, attestableFrom int64, outcome Outcome, evidenceHash string) error {
	if b.status != StatusAwaitingAttestation {
		return ErrInvalidStatus
	}
	if !outcome.IsValid() {
		return ErrInvalidOutcome
	}
	if now < attestableFrom {
		return ErrTooEarly
	}
	b.outcome = outcome
	b.evidenceHash = evidenceHash
	b.attestedAt = now
	b.finalizableAt = now + b.terms.ChallengeWindow
	b.status = StatusAttested
	return nil
}

// CanDispute is the read-only precondition of MarkDisputed. The engine
// checks it before pulling the challenge bond so a failed guard never
// leaves funds moved.
func (b *Booking) CanDispute(now int64) error {
	if b.status != StatusAttested {
		return ErrInvalidStatus
	}
	if now >= b.finalizableAt {
		return ErrWindowClosed
	}
	return nil
}

// MarkDisputed opens a dispute. Valid only inside the challenge window.
func (b *Booking) MarkDisputed(now int64) error {
	if err := b.CanDispute(now); err != nil {
		return err
	}
	b.disputedAt = now
	b.status = StatusDisputed
	return nil
}

// MarkFinalized settles an unchallenged attestation once the window closed.
func (b *Booking) MarkFinalized(now int64) error {
	if b.status != StatusAttested {
		return ErrInvalidStatus
	}
	if now < b.finalizableAt {
		return ErrTooEarly
	}
	b.status = StatusFinalized
	return nil
}

// MarkResolvedByTimeout closes a dispute the resolver never acted on.
func (b *Booking) MarkResolvedByTimeout(now int64) error {
	if b.status != StatusDisputed {
		return ErrInvalidStatus
	}
	if now < b.disputedAt+b.terms.DisputeTimeout {
		return ErrTooEarly
	}
	b.status = StatusResolved
	return nil
}

// MarkCancelled terminates the booking on guest cancellation.
func (b *Booking) MarkCancelled() error {
	if b.status != StatusAwaitingAttestation {
		return ErrInvalidStatus
	}
	b.status = StatusCancelled
	return nil
}

// MarkClaimedUnattested is the oracle-failure valve: past the buffer after
// session end, a never-attested booking closes in the guest's favor. The
// guard is strict: at exactly sessionEnd+buffer the claim is still early.
func (b *Booking) MarkClaimedUnattested(now, sessionEnd int64) error {
	if b.status != StatusAwaitingAttestation {
		return ErrInvalidStatus
	}
	if now <= sessionEnd+b.terms.NoAttestBuffer {
		return ErrTooEarly
	}
	b.status = StatusFinalized
	return nil
}
