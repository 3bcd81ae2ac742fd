package engine

import (
	"context"

	"sessionbook/internal/domain/token"

	"github.com/google/uuid"
)

// WithdrawOwed pays out the caller's entire owed balance with a real token
// transfer. The balance is zeroed before the transfer; if the transfer
// fails, the balance is restored and the call has no effect. This is the
// only operation besides the sweeps that moves tokens off the vault.
func (e *Engine) WithdrawOwed(ctx context.Context, caller uuid.UUID) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	amount := e.owed[caller]
	if amount == 0 {
		return 0, fail(CodeFunds, "nothing owed")
	}
	delete(e.owed, caller)
	if err := e.token.Transfer(e.vault, caller, amount); err != nil {
		e.owed[caller] = amount
		return 0, failWrap(CodeFunds, "withdraw transfer failed", err)
	}
	e.totalHeld -= amount
	e.emit(ctx, "ledger.withdrawn", caller, caller, amount)
	return amount, nil
}

// SweepTokenExcess moves any vault balance above totalHeld to the
// treasury. Structurally it can never touch committed or owed funds: only
// the surplus is read, and the surplus is by definition unbacked by any
// claim.
func (e *Engine) SweepTokenExcess(ctx context.Context, caller uuid.UUID) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return 0, fail(CodeUnauthorized, "only the owner may sweep")
	}
	excess := e.token.BalanceOf(e.vault) - e.totalHeld
	if excess <= 0 {
		return 0, nil
	}
	if err := e.token.Transfer(e.vault, e.treasury, excess); err != nil {
		return 0, failWrap(CodeFunds, "sweep transfer failed", err)
	}
	e.emit(ctx, "ledger.swept", caller, e.treasury, excess)
	return excess, nil
}

// SweepForeign recovers the vault's entire balance of an asset that is not
// the payment token. The engine has no legitimate use for any other asset,
// so whatever sits there is a stray transfer. Sweeping the payment token
// through this path is rejected: it would bypass the totalHeld guard.
func (e *Engine) SweepForeign(ctx context.Context, caller uuid.UUID, asset token.Token) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return 0, fail(CodeUnauthorized, "only the owner may sweep")
	}
	if asset == nil || asset == e.token {
		return 0, fail(CodeInvalidInput, "asset must be a foreign token")
	}
	amount := asset.BalanceOf(e.vault)
	if amount == 0 {
		return 0, nil
	}
	if err := asset.Transfer(e.vault, e.treasury, amount); err != nil {
		return 0, failWrap(CodeFunds, "sweep transfer failed", err)
	}
	e.emit(ctx, "ledger.swept_foreign", caller, e.treasury, amount)
	return amount, nil
}
