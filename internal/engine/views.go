package engine

import (
	"sessionbook/internal/domain/booking"
	"sessionbook/internal/domain/request"
	"sessionbook/internal/domain/slot"

	"github.com/google/uuid"
)

// Read views copy record state under the lock so callers never observe a
// record mid-transition.

type SlotView struct {
	ID               uuid.UUID `json:"id"`
	Host             uuid.UUID `json:"host"`
	StartTime        int64     `json:"start_time"`
	DurationMins     int64     `json:"duration_mins"`
	CancelCutoffMins int64     `json:"cancel_cutoff_mins"`
	MinOverlapMins   int64     `json:"min_overlap_mins"`
	Reserved         int64     `json:"reserved"`
	Price            int64     `json:"price"`
	HasPrice         bool      `json:"has_price"`
}

type RequestView struct {
	ID           uuid.UUID      `json:"id"`
	Guest        uuid.UUID      `json:"guest"`
	Host         uuid.UUID      `json:"host"`
	WindowStart  int64          `json:"window_start"`
	WindowEnd    int64          `json:"window_end"`
	DurationMins int64          `json:"duration_mins"`
	Price        int64          `json:"price"`
	Deadline     int64          `json:"deadline"`
	Status       request.Status `json:"status"`
}

type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	SlotID        uuid.UUID       `json:"slot_id"`
	Guest         uuid.UUID       `json:"guest"`
	Price         int64           `json:"price"`
	Status        booking.Status  `json:"status"`
	Outcome       booking.Outcome `json:"outcome,omitempty"`
	EvidenceHash  string          `json:"evidence_hash,omitempty"`
	AttestedAt    int64           `json:"attested_at,omitempty"`
	FinalizableAt int64           `json:"finalizable_at,omitempty"`
	DisputedAt    int64           `json:"disputed_at,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	Terms         booking.Terms   `json:"terms"`
}

func (e *Engine) GetSlot(id uuid.UUID) (SlotView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.slots[id]
	if !ok {
		return SlotView{}, fail(CodeNotFound, "slot not found")
	}
	return slotView(s), nil
}

func (e *Engine) ListSlotsByHost(host uuid.UUID) []SlotView {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []SlotView
	for _, s := range e.slots {
		if s.Host() == host {
			out = append(out, slotView(s))
		}
	}
	return out
}

func (e *Engine) GetRequest(id uuid.UUID) (RequestView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.requests[id]
	if !ok {
		return RequestView{}, fail(CodeNotFound, "request not found")
	}
	return RequestView{
		ID:           r.ID(),
		Guest:        r.Guest(),
		Host:         r.Host(),
		WindowStart:  r.WindowStart(),
		WindowEnd:    r.WindowEnd(),
		DurationMins: r.DurationMins(),
		Price:        r.Price(),
		Deadline:     r.Deadline(),
		Status:       r.Status(),
	}, nil
}

func (e *Engine) GetBooking(id uuid.UUID) (BookingView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[id]
	if !ok {
		return BookingView{}, fail(CodeNotFound, "booking not found")
	}
	return BookingView{
		ID:            b.ID(),
		SlotID:        b.SlotID(),
		Guest:         b.Guest(),
		Price:         b.Price(),
		Status:        b.Status(),
		Outcome:       b.Outcome(),
		EvidenceHash:  b.EvidenceHash(),
		AttestedAt:    b.AttestedAt(),
		FinalizableAt: b.FinalizableAt(),
		DisputedAt:    b.DisputedAt(),
		CreatedAt:     b.CreatedAt(),
		Terms:         b.Terms(),
	}, nil
}

func (e *Engine) GetBookingTerms(id uuid.UUID) (booking.Terms, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[id]
	if !ok {
		return booking.Terms{}, fail(CodeNotFound, "booking not found")
	}
	return b.Terms(), nil
}

func (e *Engine) Owed(account uuid.UUID) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.owed[account]
}

func (e *Engine) TotalHeld() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalHeld
}

// BPS returns the fixed basis-point denominator.
func (e *Engine) BPS() int64 {
	return booking.BPS
}

// Owner returns the active owner account.
func (e *Engine) Owner() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.owner
}

// Params returns the current global parameters (future snapshots only).
func (e *Engine) Params() booking.Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

func slotView(s *slot.Slot) SlotView {
	return SlotView{
		ID:               s.ID(),
		Host:             s.Host(),
		StartTime:        s.StartTime(),
		DurationMins:     s.DurationMins(),
		CancelCutoffMins: s.CancelCutoffMins(),
		MinOverlapMins:   s.MinOverlapMins(),
		Reserved:         s.Reserved(),
		Price:            s.Price(),
		HasPrice:         s.HasPrice(),
	}
}
