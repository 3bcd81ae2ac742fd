package token

import (
	"sync"

	"github.com/google/uuid"
)

type allowanceKey struct {
	owner   uuid.UUID
	spender uuid.UUID
}

// MemoryToken is an in-process Token with conventional transfer/approve
// semantics. It backs the default single-process deployment and every test.
type MemoryToken struct {
	mu         sync.Mutex
	balances   map[uuid.UUID]int64
	allowances map[allowanceKey]int64
}

func NewMemoryToken() *MemoryToken {
	return &MemoryToken{
		balances:   make(map[uuid.UUID]int64),
		allowances: make(map[allowanceKey]int64),
	}
}

// Mint credits an account out of thin air. Deployment seeding and tests only.
func (t *MemoryToken) Mint(account uuid.UUID, amount int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[account] += amount
}

func (t *MemoryToken) BalanceOf(account uuid.UUID) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[account]
}

func (t *MemoryToken) Transfer(from, to uuid.UUID, amount int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.move(from, to, amount)
}

func (t *MemoryToken) Approve(owner, spender uuid.UUID, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allowances[allowanceKey{owner, spender}] = amount
	return nil
}

func (t *MemoryToken) Allowance(owner, spender uuid.UUID) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allowances[allowanceKey{owner, spender}]
}

func (t *MemoryToken) TransferFrom(spender, from, to uuid.UUID, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	key := allowanceKey{from, spender}
	allowed := t.allowances[key]
	if allowed < amount {
		return ErrInsufficientAllowance
	}
	if err := t.move(from, to, amount); err != nil {
		return err
	}
	if allowed != Unlimited {
		t.allowances[key] = allowed - amount
	}
	return nil
}

func (t *MemoryToken) move(from, to uuid.UUID, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if t.balances[from] < amount {
		return ErrInsufficientBalance
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}
