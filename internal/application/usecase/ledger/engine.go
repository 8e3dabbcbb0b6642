// Package ledger implements the wallet ledger engine. It owns the rule that a
// wallet's balance, total income and total expenses always reflect the sum of
// the effects of all live transactions referencing it.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// Engine applies and reverts transaction effects on wallet aggregates. All
// three aggregate fields are persisted in a single combined write, so a wallet
// is never observed with a partially applied effect.
//
// There is no locking: concurrent read-modify-write sequences against the same
// wallet can lose updates. Callers that need strict consistency must serialize
// writes to a wallet themselves.
type Engine struct {
	walletRepo adapter.WalletRepository
}

// NewEngine creates a new ledger engine instance.
func NewEngine(walletRepo adapter.WalletRepository) *Engine {
	return &Engine{
		walletRepo: walletRepo,
	}
}

// ApplyNewTransaction applies the effect of a new transaction to a wallet.
// An expense larger than the current balance fails with an insufficient
// balance error and leaves the wallet untouched.
func (e *Engine) ApplyNewTransaction(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionType entity.TransactionType) error {
	wallet, err := e.loadWallet(ctx, walletID)
	if err != nil {
		return err
	}

	if transactionType == entity.TransactionTypeExpense && amount.GreaterThan(wallet.Balance) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeInsufficientBalance,
			"insufficient balance in wallet",
			domainerror.ErrInsufficientBalance,
		)
	}

	aggregates := adapter.WalletAggregates{
		Balance:       wallet.Balance,
		TotalIncome:   wallet.TotalIncome,
		TotalExpenses: wallet.TotalExpenses,
	}

	if transactionType == entity.TransactionTypeIncome {
		aggregates.Balance = aggregates.Balance.Add(amount)
		aggregates.TotalIncome = aggregates.TotalIncome.Add(amount)
	} else {
		aggregates.Balance = aggregates.Balance.Sub(amount)
		aggregates.TotalExpenses = aggregates.TotalExpenses.Add(amount)
	}

	if err := e.walletRepo.UpdateAggregates(ctx, walletID, aggregates); err != nil {
		return fmt.Errorf("failed to update wallet aggregates: %w", err)
	}
	return nil
}

// RevertTransaction undoes the effect of a previously applied transaction.
// Totals are clamped at zero so drift in already inconsistent data cannot
// drive them negative; the balance itself is allowed to go negative here.
func (e *Engine) RevertTransaction(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionType entity.TransactionType) error {
	wallet, err := e.loadWallet(ctx, walletID)
	if err != nil {
		return err
	}

	aggregates := adapter.WalletAggregates{
		Balance:       wallet.Balance,
		TotalIncome:   wallet.TotalIncome,
		TotalExpenses: wallet.TotalExpenses,
	}

	if transactionType == entity.TransactionTypeIncome {
		aggregates.Balance = aggregates.Balance.Sub(amount)
		aggregates.TotalIncome = clampZero(aggregates.TotalIncome.Sub(amount))
	} else {
		aggregates.Balance = aggregates.Balance.Add(amount)
		aggregates.TotalExpenses = clampZero(aggregates.TotalExpenses.Sub(amount))
	}

	if err := e.walletRepo.UpdateAggregates(ctx, walletID, aggregates); err != nil {
		return fmt.Errorf("failed to update wallet aggregates: %w", err)
	}
	return nil
}

// RevertAndReapply reverts the effect of an old transaction on its original
// wallet, then applies the new effect to the target wallet (which may be the
// same one). If the apply step fails the original wallet remains in the
// reverted-only state; callers surface the error and the caller reconciles.
func (e *Engine) RevertAndReapply(
	ctx context.Context,
	old *entity.Transaction,
	newAmount decimal.Decimal,
	newType entity.TransactionType,
	newWalletID uuid.UUID,
) error {
	if err := e.RevertTransaction(ctx, old.WalletID, old.Amount, old.Type); err != nil {
		return err
	}
	return e.ApplyNewTransaction(ctx, newWalletID, newAmount, newType)
}

// loadWallet fetches a wallet, mapping a missing record to the wallet
// not-found domain error.
func (e *Engine) loadWallet(ctx context.Context, walletID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := e.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	return wallet, nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
