// Package ledger implements the wallet ledger engine.
package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// fakeWalletRepo is an in-memory wallet repository for engine tests.
type fakeWalletRepo struct {
	wallets map[uuid.UUID]*entity.Wallet
	updates int
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[uuid.UUID]*entity.Wallet)}
}

func (r *fakeWalletRepo) add(balance, income, expenses string) uuid.UUID {
	w := entity.NewWallet(uuid.New(), "main", "")
	w.Balance = decimal.RequireFromString(balance)
	w.TotalIncome = decimal.RequireFromString(income)
	w.TotalExpenses = decimal.RequireFromString(expenses)
	r.wallets[w.ID] = w
	return w.ID
}

func (r *fakeWalletRepo) Create(ctx context.Context, wallet *entity.Wallet) error {
	r.wallets[wallet.ID] = wallet
	return nil
}

func (r *fakeWalletRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	w, ok := r.wallets[id]
	if !ok {
		return nil, domainerror.ErrWalletNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWalletRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	return nil, nil
}

func (r *fakeWalletRepo) Update(ctx context.Context, wallet *entity.Wallet) error {
	r.wallets[wallet.ID] = wallet
	return nil
}

func (r *fakeWalletRepo) UpdateAggregates(ctx context.Context, id uuid.UUID, aggregates adapter.WalletAggregates) error {
	w, ok := r.wallets[id]
	if !ok {
		return domainerror.ErrWalletNotFound
	}
	w.Balance = aggregates.Balance
	w.TotalIncome = aggregates.TotalIncome
	w.TotalExpenses = aggregates.TotalExpenses
	r.updates++
	return nil
}

func (r *fakeWalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.wallets, id)
	return nil
}

func TestApplyNewTransaction(t *testing.T) {
	tests := []struct {
		name             string
		balance          string
		amount           string
		transactionType  entity.TransactionType
		wantErr          bool
		wantErrCode      domainerror.WalletErrorCode
		wantBalance      string
		wantTotalIncome  string
		wantTotalExpense string
	}{
		{
			name:             "income increases balance and total income",
			balance:          "100",
			amount:           "40",
			transactionType:  entity.TransactionTypeIncome,
			wantBalance:      "140",
			wantTotalIncome:  "40",
			wantTotalExpense: "0",
		},
		{
			name:             "expense decreases balance and increases total expenses",
			balance:          "100",
			amount:           "40",
			transactionType:  entity.TransactionTypeExpense,
			wantBalance:      "60",
			wantTotalIncome:  "0",
			wantTotalExpense: "40",
		},
		{
			name:             "expense equal to balance is allowed",
			balance:          "100",
			amount:           "100",
			transactionType:  entity.TransactionTypeExpense,
			wantBalance:      "0",
			wantTotalIncome:  "0",
			wantTotalExpense: "100",
		},
		{
			name:            "expense above balance fails with insufficient balance",
			balance:         "100",
			amount:          "100.01",
			transactionType: entity.TransactionTypeExpense,
			wantErr:         true,
			wantErrCode:     domainerror.ErrCodeInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeWalletRepo()
			walletID := repo.add(tt.balance, "0", "0")
			engine := NewEngine(repo)

			err := engine.ApplyNewTransaction(context.Background(), walletID, decimal.RequireFromString(tt.amount), tt.transactionType)

			if tt.wantErr {
				var walletErr *domainerror.WalletError
				if !errors.As(err, &walletErr) {
					t.Fatalf("expected WalletError, got %v", err)
				}
				if walletErr.Code != tt.wantErrCode {
					t.Errorf("expected code %s, got %s", tt.wantErrCode, walletErr.Code)
				}
				// Wallet must be untouched on failure.
				if repo.updates != 0 {
					t.Error("expected no aggregate write on failed apply")
				}
				w := repo.wallets[walletID]
				if !w.Balance.Equal(decimal.RequireFromString(tt.balance)) {
					t.Errorf("expected balance unchanged at %s, got %s", tt.balance, w.Balance)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			w := repo.wallets[walletID]
			if !w.Balance.Equal(decimal.RequireFromString(tt.wantBalance)) {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, w.Balance)
			}
			if !w.TotalIncome.Equal(decimal.RequireFromString(tt.wantTotalIncome)) {
				t.Errorf("expected total income %s, got %s", tt.wantTotalIncome, w.TotalIncome)
			}
			if !w.TotalExpenses.Equal(decimal.RequireFromString(tt.wantTotalExpense)) {
				t.Errorf("expected total expenses %s, got %s", tt.wantTotalExpense, w.TotalExpenses)
			}
			if repo.updates != 1 {
				t.Errorf("expected exactly one combined aggregate write, got %d", repo.updates)
			}
		})
	}
}

func TestApplyThenRevertRestoresWallet(t *testing.T) {
	tests := []struct {
		name            string
		amount          string
		transactionType entity.TransactionType
	}{
		{"income", "33.75", entity.TransactionTypeIncome},
		{"expense", "12.50", entity.TransactionTypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeWalletRepo()
			walletID := repo.add("250.40", "300", "49.60")
			engine := NewEngine(repo)
			amount := decimal.RequireFromString(tt.amount)

			if err := engine.ApplyNewTransaction(context.Background(), walletID, amount, tt.transactionType); err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if err := engine.RevertTransaction(context.Background(), walletID, amount, tt.transactionType); err != nil {
				t.Fatalf("revert failed: %v", err)
			}

			w := repo.wallets[walletID]
			if !w.Balance.Equal(decimal.RequireFromString("250.40")) {
				t.Errorf("expected balance restored to 250.40, got %s", w.Balance)
			}
			if !w.TotalIncome.Equal(decimal.RequireFromString("300")) {
				t.Errorf("expected total income restored to 300, got %s", w.TotalIncome)
			}
			if !w.TotalExpenses.Equal(decimal.RequireFromString("49.60")) {
				t.Errorf("expected total expenses restored to 49.60, got %s", w.TotalExpenses)
			}
		})
	}
}

func TestRevertClampsTotalsAtZero(t *testing.T) {
	repo := newFakeWalletRepo()
	// Totals already inconsistent and smaller than the reverted amount.
	walletID := repo.add("10", "5", "5")
	engine := NewEngine(repo)

	if err := engine.RevertTransaction(context.Background(), walletID, decimal.RequireFromString("20"), entity.TransactionTypeIncome); err != nil {
		t.Fatalf("revert failed: %v", err)
	}
	w := repo.wallets[walletID]
	if !w.TotalIncome.IsZero() {
		t.Errorf("expected total income clamped to 0, got %s", w.TotalIncome)
	}
	if !w.Balance.Equal(decimal.RequireFromString("-10")) {
		t.Errorf("expected balance -10 after income revert, got %s", w.Balance)
	}

	if err := engine.RevertTransaction(context.Background(), walletID, decimal.RequireFromString("20"), entity.TransactionTypeExpense); err != nil {
		t.Fatalf("revert failed: %v", err)
	}
	if !w.TotalExpenses.IsZero() {
		t.Errorf("expected total expenses clamped to 0, got %s", w.TotalExpenses)
	}
}

func TestRevertTransactionWalletGone(t *testing.T) {
	repo := newFakeWalletRepo()
	engine := NewEngine(repo)

	err := engine.RevertTransaction(context.Background(), uuid.New(), decimal.RequireFromString("10"), entity.TransactionTypeIncome)

	var walletErr *domainerror.WalletError
	if !errors.As(err, &walletErr) {
		t.Fatalf("expected WalletError, got %v", err)
	}
	if walletErr.Code != domainerror.ErrCodeWalletNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeWalletNotFound, walletErr.Code)
	}
}

func TestRevertAndReapplySameWallet(t *testing.T) {
	// Stored expense of 50 on a wallet with balance 100 edited down to 30:
	// revert brings the balance to 150, the new apply lands at 120.
	repo := newFakeWalletRepo()
	walletID := repo.add("100", "0", "50")
	engine := NewEngine(repo)

	old := &entity.Transaction{
		WalletID: walletID,
		Amount:   decimal.RequireFromString("50"),
		Type:     entity.TransactionTypeExpense,
	}

	err := engine.RevertAndReapply(context.Background(), old, decimal.RequireFromString("30"), entity.TransactionTypeExpense, walletID)
	if err != nil {
		t.Fatalf("revert and reapply failed: %v", err)
	}

	w := repo.wallets[walletID]
	if !w.Balance.Equal(decimal.RequireFromString("120")) {
		t.Errorf("expected balance 120, got %s", w.Balance)
	}
	if !w.TotalExpenses.Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected total expenses 30, got %s", w.TotalExpenses)
	}
}

func TestRevertAndReapplyAcrossWallets(t *testing.T) {
	repo := newFakeWalletRepo()
	sourceID := repo.add("100", "0", "50")
	targetID := repo.add("80", "0", "0")
	engine := NewEngine(repo)

	old := &entity.Transaction{
		WalletID: sourceID,
		Amount:   decimal.RequireFromString("50"),
		Type:     entity.TransactionTypeExpense,
	}

	err := engine.RevertAndReapply(context.Background(), old, decimal.RequireFromString("50"), entity.TransactionTypeExpense, targetID)
	if err != nil {
		t.Fatalf("revert and reapply failed: %v", err)
	}

	source := repo.wallets[sourceID]
	if !source.Balance.Equal(decimal.RequireFromString("150")) {
		t.Errorf("expected source balance 150, got %s", source.Balance)
	}
	if !source.TotalExpenses.IsZero() {
		t.Errorf("expected source total expenses 0, got %s", source.TotalExpenses)
	}

	target := repo.wallets[targetID]
	if !target.Balance.Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected target balance 30, got %s", target.Balance)
	}
	if !target.TotalExpenses.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected target total expenses 50, got %s", target.TotalExpenses)
	}
}

func TestRevertAndReapplyLeavesRevertedStateOnApplyFailure(t *testing.T) {
	repo := newFakeWalletRepo()
	sourceID := repo.add("100", "100", "0")
	targetID := repo.add("10", "0", "0")
	engine := NewEngine(repo)

	old := &entity.Transaction{
		WalletID: sourceID,
		Amount:   decimal.RequireFromString("40"),
		Type:     entity.TransactionTypeIncome,
	}

	// New expense exceeds the target wallet's balance, so the apply fails
	// after the revert already went through.
	err := engine.RevertAndReapply(context.Background(), old, decimal.RequireFromString("999"), entity.TransactionTypeExpense, targetID)

	var walletErr *domainerror.WalletError
	if !errors.As(err, &walletErr) {
		t.Fatalf("expected WalletError, got %v", err)
	}
	if walletErr.Code != domainerror.ErrCodeInsufficientBalance {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInsufficientBalance, walletErr.Code)
	}

	source := repo.wallets[sourceID]
	if !source.Balance.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected source left in reverted state at 60, got %s", source.Balance)
	}
	target := repo.wallets[targetID]
	if !target.Balance.Equal(decimal.RequireFromString("10")) {
		t.Errorf("expected target unchanged at 10, got %s", target.Balance)
	}
}

func TestTotalsNeverNegativeUnderRandomSequences(t *testing.T) {
	repo := newFakeWalletRepo()
	walletID := repo.add("1000", "0", "0")
	engine := NewEngine(repo)

	ops := []struct {
		apply           bool
		amount          string
		transactionType entity.TransactionType
	}{
		{true, "100", entity.TransactionTypeIncome},
		{false, "250", entity.TransactionTypeIncome},
		{true, "75", entity.TransactionTypeExpense},
		{false, "300", entity.TransactionTypeExpense},
		{false, "50", entity.TransactionTypeIncome},
		{true, "20", entity.TransactionTypeExpense},
		{false, "500", entity.TransactionTypeExpense},
	}

	for i, op := range ops {
		var err error
		amount := decimal.RequireFromString(op.amount)
		if op.apply {
			err = engine.ApplyNewTransaction(context.Background(), walletID, amount, op.transactionType)
		} else {
			err = engine.RevertTransaction(context.Background(), walletID, amount, op.transactionType)
		}
		if err != nil {
			t.Fatalf("op %d failed: %v", i, err)
		}

		w := repo.wallets[walletID]
		if w.TotalIncome.IsNegative() {
			t.Fatalf("op %d: total income went negative: %s", i, w.TotalIncome)
		}
		if w.TotalExpenses.IsNegative() {
			t.Fatalf("op %d: total expenses went negative: %s", i, w.TotalExpenses)
		}
	}
}
