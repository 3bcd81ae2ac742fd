package slot

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStart    = errors.New("start time must be positive")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrNegativeMinutes = errors.New("minute parameter cannot be negative")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// Slot is a host-created availability record. Immutable once created; there
// is no update operation, only bookings that reference it.
type Slot struct {
	id               uuid.UUID
	host             uuid.UUID
	startTime        int64 // unix seconds
	durationMins     int64
	cancelCutoffMins int64
	minOverlapMins   int64
	reserved         int64 // fifth scheduling parameter, semantics unassigned
	price            int64
	priced           bool // false: bookings read the host base price instead
}

// NewSlot creates an unpriced slot; bookings against it read the host's
// base price at booking time.
func NewSlot(host uuid.UUID, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved int64) (*Slot, error) {
	return newSlot(host, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, 0, false)
}

// NewSlotWithPrice creates a slot with the price fixed at creation.
func NewSlotWithPrice(host uuid.UUID, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, price int64) (*Slot, error) {
	return newSlot(host, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, price, true)
}

func newSlot(host uuid.UUID, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, price int64, priced bool) (*Slot, error) {
	if startTime <= 0 {
		return nil, ErrInvalidStart
	}
	if durationMins <= 0 {
		return nil, ErrInvalidDuration
	}
	if cancelCutoffMins < 0 || minOverlapMins < 0 {
		return nil, ErrNegativeMinutes
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Slot{
		id:               uuid.New(),
		host:             host,
		startTime:        startTime,
		durationMins:     durationMins,
		cancelCutoffMins: cancelCutoffMins,
		minOverlapMins:   minOverlapMins,
		reserved:         reserved,
		price:            price,
		priced:           priced,
	}, nil
}

func (s *Slot) ID() uuid.UUID { return s.id }
func (s *Slot) Host() uuid.UUID { return s.host }
func (s *Slot) StartTime() int64 { return s.startTime }
func (s *Slot) DurationMins() int64 { return s.durationMins }
func (s *Slot) CancelCutoffMins() int64 { return s.cancelCutoffMins }
func (s *Slot) MinOverlapMins() int64 { return s.minOverlapMins }
func (s *Slot) Reserved() int64 { return s.reserved }
func (s *Slot) Price() int64 { return s.price }
func (s *Slot) HasPrice() bool { return s.priced }

// CancelCutoff is the instant after which a guest cancellation is late.
func (s *Slot) CancelCutoff() int64 {
	return s.startTime - s.cancelCutoffMins*60
}

// AttestableFrom is the earliest instant an attestation is meaningful.
func (s *Slot) AttestableFrom() int64 {
	return s.startTime + s.minOverlapMins*60
}

// End is the scheduled session end.
func (s *Slot) End() int64 {
	return s.startTime + s.durationMins*60
}
