package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/ledger"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

func newDeleteFixture() (*DeleteTransactionUseCase, *fakeTransactionRepo, *fakeWalletRepo, *fakeStatsCache) {
	transactionRepo := newFakeTransactionRepo()
	walletRepo := newFakeWalletRepo()
	statsCache := &fakeStatsCache{}
	uc := NewDeleteTransactionUseCase(transactionRepo, ledger.NewEngine(walletRepo), statsCache)
	return uc, transactionRepo, walletRepo, statsCache
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("deleting an expense restores the wallet balance", func(t *testing.T) {
		uc, transactionRepo, walletRepo, statsCache := newDeleteFixture()
		userID := uuid.New()
		wallet := walletRepo.add(userID, "100")
		txn := seedTransaction(t, transactionRepo, walletRepo, userID, wallet.ID, entity.TransactionTypeExpense, "40")

		if err := uc.Execute(context.Background(), DeleteTransactionInput{ID: txn.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after, _ := walletRepo.FindByID(context.Background(), wallet.ID)
		if !after.Balance.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected balance restored to 100, got %s", after.Balance)
		}
		if !after.TotalExpenses.IsZero() {
			t.Errorf("expected total expenses 0, got %s", after.TotalExpenses)
		}
		if _, err := transactionRepo.FindByID(context.Background(), txn.ID); err == nil {
			t.Error("expected transaction to be gone")
		}
		if len(statsCache.invalidated) != 1 {
			t.Errorf("expected 1 invalidation, got %d", len(statsCache.invalidated))
		}
	})

	t.Run("deleting an income removes its contribution", func(t *testing.T) {
		uc, transactionRepo, walletRepo, _ := newDeleteFixture()
		userID := uuid.New()
		wallet := walletRepo.add(userID, "100")
		txn := seedTransaction(t, transactionRepo, walletRepo, userID, wallet.ID, entity.TransactionTypeIncome, "60")

		if err := uc.Execute(context.Background(), DeleteTransactionInput{ID: txn.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after, _ := walletRepo.FindByID(context.Background(), wallet.ID)
		if !after.Balance.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected balance 100, got %s", after.Balance)
		}
		if !after.TotalIncome.IsZero() {
			t.Errorf("expected total income 0, got %s", after.TotalIncome)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		uc, _, _, _ := newDeleteFixture()

		err := uc.Execute(context.Background(), DeleteTransactionInput{ID: uuid.New(), UserID: uuid.New()})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("transaction owned by another user keeps the document", func(t *testing.T) {
		uc, transactionRepo, walletRepo, _ := newDeleteFixture()
		ownerID := uuid.New()
		wallet := walletRepo.add(ownerID, "100")
		txn := seedTransaction(t, transactionRepo, walletRepo, ownerID, wallet.ID, entity.TransactionTypeExpense, "10")

		err := uc.Execute(context.Background(), DeleteTransactionInput{ID: txn.ID, UserID: uuid.New()})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeNotAuthorizedTransaction {
			t.Fatalf("expected not authorized error, got %v", err)
		}
		if _, err := transactionRepo.FindByID(context.Background(), txn.ID); err != nil {
			t.Error("expected transaction to still exist")
		}
	})
}
