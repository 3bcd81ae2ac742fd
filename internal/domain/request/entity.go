package request

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("window start must be before window end")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidDeadline = errors.New("deadline must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrAlreadyClosed   = errors.New("request already accepted or cancelled")
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
)

// Request is a guest-initiated "any qualifying host may accept" record. The
// price is escrowed the moment it is created; accept and cancel are
// mutually exclusive terminal outcomes.
type Request struct {
	id           uuid.UUID
	guest        uuid.UUID
	host         uuid.UUID // uuid.Nil means any host
	windowStart  int64
	windowEnd    int64
	durationMins int64
	price        int64
	deadline     int64
	status       Status
}

func NewRequest(guest, host uuid.UUID, windowStart, windowEnd, durationMins, price, deadline int64) (*Request, error) {
	if windowStart >= windowEnd {
		return nil, ErrInvalidWindow
	}
	if durationMins <= 0 {
		return nil, ErrInvalidDuration
	}
	if deadline <= 0 {
		return nil, ErrInvalidDeadline
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Request{
		id:           uuid.New(),
		guest:        guest,
		host:         host,
		windowStart:  windowStart,
		windowEnd:    windowEnd,
		durationMins: durationMins,
		price:        price,
		deadline:     deadline,
		status:       StatusOpen,
	}, nil
}

func (r *Request) ID() uuid.UUID { return r.id }
func (r *Request) Guest() uuid.UUID { return r.guest }
func (r *Request) Host() uuid.UUID { return r.host }
func (r *Request) WindowStart() int64 { return r.windowStart }
func (r *Request) WindowEnd() int64 { return r.windowEnd }
func (r *Request) DurationMins() int64 { return r.durationMins }
func (r *Request) Price() int64 { return r.price }
func (r *Request) Deadline() int64 { return r.deadline }
func (r *Request) Status() Status { return r.status }

func (r *Request) IsOpen() bool { return r.status == StatusOpen }

// AnyHost reports whether any host may accept this request.
func (r *Request) AnyHost() bool { return r.host == uuid.Nil }

func (r *Request) Accept() error {
	if r.status != StatusOpen {
		return ErrAlreadyClosed
	}
	r.status = StatusAccepted
	return nil
}

func (r *Request) Cancel() error {
	if r.status != StatusOpen {
		return ErrAlreadyClosed
	}
	r.status = StatusCancelled
	return nil
}
