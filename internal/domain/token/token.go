package token

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
)

// Unlimited is the sentinel allowance that transferFrom never decrements.
const Unlimited int64 = math.MaxInt64

// Token is the payment asset the engine escrows. It is an external
// collaborator: the engine never keeps a balance structure of its own, only
// a claim (totalHeld) against the balance this interface reports.
//
// Amounts are integer base units. Callers are explicit because there is no
// ambient message sender in this environment.
type Token interface {
	BalanceOf(account uuid.UUID) int64
	Transfer(from, to uuid.UUID, amount int64) error
	Approve(owner, spender uuid.UUID, amount int64) error
	Allowance(owner, spender uuid.UUID) int64
	TransferFrom(spender, from, to uuid.UUID, amount int64) error
}
