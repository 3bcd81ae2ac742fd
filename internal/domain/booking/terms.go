package booking

import "errors"

// BPS is the denominator for basis-point math. 10,000 bps = 100%.
const BPS int64 = 10_000

var (
	ErrBpsOutOfRange  = errors.New("basis points out of range")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrNegativeWindow = errors.New("window cannot be negative")
)

// Terms is the economic snapshot a booking captures at creation. Once
// captured it never changes; later admin parameter updates apply only to
// bookings created afterwards. Windows and timeouts are in seconds.
type Terms struct {
	FeeBps               int64
	LateCancelPenaltyBps int64
	ChallengeBond        int64
	ChallengeWindow      int64
	NoAttestBuffer       int64
	DisputeTimeout       int64
}

// Params holds the mutable global parameters the owner configures. A
// booking never reads Params after creation, only its Terms snapshot.
type Params struct {
	FeeBps               int64
	LateCancelPenaltyBps int64
	ChallengeBond        int64
	ChallengeWindow      int64
	NoAttestBuffer       int64
	DisputeTimeout       int64
}

func (p Params) Validate() error {
	if p.FeeBps < 0 || p.FeeBps > BPS {
		return ErrBpsOutOfRange
	}
	if p.LateCancelPenaltyBps < 0 || p.LateCancelPenaltyBps > BPS {
		return ErrBpsOutOfRange
	}
	if p.ChallengeBond < 0 {
		return ErrNegativeAmount
	}
	if p.ChallengeWindow < 0 || p.NoAttestBuffer < 0 || p.DisputeTimeout < 0 {
		return ErrNegativeWindow
	}
	return nil
}

// Snapshot copies the current globals into an immutable Terms value.
func (p Params) Snapshot() Terms {
	return Terms{
		FeeBps:               p.FeeBps,
		LateCancelPenaltyBps: p.LateCancelPenaltyBps,
		ChallengeBond:        p.ChallengeBond,
		ChallengeWindow:      p.ChallengeWindow,
		NoAttestBuffer:       p.NoAttestBuffer,
		DisputeTimeout:       p.DisputeTimeout,
	}
}

// BpsShare computes amount*bps/BPS with integer truncation. All fee and
// penalty math in the engine goes through this so the rounding is uniform.
func BpsShare(amount, bps int64) int64 {
	return amount * bps / BPS
}

// Fee is the treasury cut of a settled amount under these terms.
func (t Terms) Fee(amount int64) int64 {
	return BpsShare(amount, t.FeeBps)
}

// LateCancelPenalty is the slice of the price forfeited by a late guest
// cancellation, before the fee is carved out of it.
func (t Terms) LateCancelPenalty(price int64) int64 {
	return BpsShare(price, t.LateCancelPenaltyBps)
}
