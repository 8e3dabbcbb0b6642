package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

func TestListTransactions(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	userID := uuid.New()
	walletID := uuid.New()
	otherWalletID := uuid.New()

	store := func(walletID uuid.UUID, transactionType entity.TransactionType, amount string) {
		txn := entity.NewTransaction(userID, walletID, transactionType, decimal.RequireFromString(amount), "food", time.Time{}, "", "")
		if err := transactionRepo.Create(context.Background(), txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}
	store(walletID, entity.TransactionTypeExpense, "10")
	store(walletID, entity.TransactionTypeIncome, "20")
	store(otherWalletID, entity.TransactionTypeExpense, "30")

	uc := NewListTransactionsUseCase(transactionRepo)

	t.Run("lists all user transactions", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(out.Transactions))
		}
		if out.Pagination.Page != 1 || out.Pagination.Limit != 20 {
			t.Errorf("expected default pagination 1/20, got %d/%d", out.Pagination.Page, out.Pagination.Limit)
		}
	})

	t.Run("filters by wallet", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID, WalletID: &walletID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(out.Transactions))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		incomeType := entity.TransactionTypeIncome
		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID, Type: &incomeType})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(out.Transactions))
		}
	})

	t.Run("rejects invalid type filter", func(t *testing.T) {
		badType := entity.TransactionType("transfer")
		_, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID, Type: &badType})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionType {
			t.Fatalf("expected invalid type error, got %v", err)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Transactions) != 0 {
			t.Errorf("expected 0 transactions, got %d", len(out.Transactions))
		}
	})
}
