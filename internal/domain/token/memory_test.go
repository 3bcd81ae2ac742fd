//go:build unit

package token_test

import (
	"testing"

	"sessionbook/internal/domain/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("moves the amount", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(a, 100)

		require.NoError(t, tok.Transfer(a, b, 60))
		assert.Equal(t, int64(40), tok.BalanceOf(a))
		assert.Equal(t, int64(60), tok.BalanceOf(b))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(a, 100)

		assert.ErrorIs(t, tok.Transfer(a, b, 101), token.ErrInsufficientBalance)
		assert.Equal(t, int64(100), tok.BalanceOf(a))
		assert.Equal(t, int64(0), tok.BalanceOf(b))
	})

	t.Run("negative amount", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(a, 100)
		assert.ErrorIs(t, tok.Transfer(a, b, -1), token.ErrNegativeAmount)
	})
}

func TestTransferFrom(t *testing.T) {
	owner, spender, dest := uuid.New(), uuid.New(), uuid.New()

	t.Run("decrements the allowance", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(owner, 100)
		require.NoError(t, tok.Approve(owner, spender, 70))

		require.NoError(t, tok.TransferFrom(spender, owner, dest, 30))
		assert.Equal(t, int64(40), tok.Allowance(owner, spender))
		assert.Equal(t, int64(70), tok.BalanceOf(owner))
		assert.Equal(t, int64(30), tok.BalanceOf(dest))
	})

	t.Run("insufficient allowance", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(owner, 100)
		require.NoError(t, tok.Approve(owner, spender, 20))

		assert.ErrorIs(t, tok.TransferFrom(spender, owner, dest, 21), token.ErrInsufficientAllowance)
		assert.Equal(t, int64(100), tok.BalanceOf(owner))
	})

	t.Run("allowance covers but balance does not", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(owner, 10)
		require.NoError(t, tok.Approve(owner, spender, 100))

		assert.ErrorIs(t, tok.TransferFrom(spender, owner, dest, 50), token.ErrInsufficientBalance)
		// The allowance is untouched on a failed move.
		assert.Equal(t, int64(100), tok.Allowance(owner, spender))
	})

	t.Run("unlimited allowance never decrements", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(owner, 100)
		require.NoError(t, tok.Approve(owner, spender, token.Unlimited))

		require.NoError(t, tok.TransferFrom(spender, owner, dest, 60))
		assert.Equal(t, token.Unlimited, tok.Allowance(owner, spender))
	})

	t.Run("no approval at all", func(t *testing.T) {
		tok := token.NewMemoryToken()
		tok.Mint(owner, 100)
		assert.ErrorIs(t, tok.TransferFrom(spender, owner, dest, 1), token.ErrInsufficientAllowance)
	})
}

func TestApprove(t *testing.T) {
	owner, spender := uuid.New(), uuid.New()

	t.Run("overwrites the previous allowance", func(t *testing.T) {
		tok := token.NewMemoryToken()
		require.NoError(t, tok.Approve(owner, spender, 50))
		require.NoError(t, tok.Approve(owner, spender, 10))
		assert.Equal(t, int64(10), tok.Allowance(owner, spender))
	})

	t.Run("negative amount", func(t *testing.T) {
		tok := token.NewMemoryToken()
		assert.ErrorIs(t, tok.Approve(owner, spender, -1), token.ErrNegativeAmount)
	})
}
