package engine

import (
	"context"

	"sessionbook/internal/domain/slot"

	"github.com/google/uuid"
)

// CreateSlot publishes an availability record priced by the caller's base
// price at booking time. No funds move.
func (e *Engine) CreateSlot(ctx context.Context, caller uuid.UUID, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved int64) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := slot.NewSlot(caller, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved)
	if err != nil {
		return uuid.Nil, failWrap(CodeInvalidInput, "invalid slot", err)
	}
	e.slots[s.ID()] = s
	e.emit(ctx, "slot.created", caller, s.ID(), 0)
	return s.ID(), nil
}

// CreateSlotWithPrice publishes a slot whose price is fixed at creation,
// immune to later base-price changes.
func (e *Engine) CreateSlotWithPrice(ctx context.Context, caller uuid.UUID, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, price int64) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := slot.NewSlotWithPrice(caller, startTime, durationMins, cancelCutoffMins, minOverlapMins, reserved, price)
	if err != nil {
		return uuid.Nil, failWrap(CodeInvalidInput, "invalid slot", err)
	}
	e.slots[s.ID()] = s
	e.emit(ctx, "slot.created", caller, s.ID(), price)
	return s.ID(), nil
}

// SetHostBasePrice sets the caller's own default slot price. It affects
// only future bookings of the caller's unpriced slots.
func (e *Engine) SetHostBasePrice(ctx context.Context, caller uuid.UUID, price int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if price < 0 {
		return fail(CodeInvalidInput, "price cannot be negative")
	}
	e.basePrice[caller] = price
	e.emit(ctx, "host.base_price_set", caller, caller, price)
	return nil
}

// effectivePrice resolves what a booking of s escrows right now.
func (e *Engine) effectivePrice(s *slot.Slot) int64 {
	if s.HasPrice() {
		return s.Price()
	}
	return e.basePrice[s.Host()]
}
