package statistics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// WalletBreakdownInput represents the input for a per-wallet breakdown. A
// zero Reference means "now".
type WalletBreakdownInput struct {
	UserID    uuid.UUID
	Period    Period
	Reference time.Time
}

// WalletSlice is one wallet's activity over the period.
type WalletSlice struct {
	WalletID uuid.UUID
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Count    int
}

// WalletBreakdownOutput represents the output of a wallet breakdown.
type WalletBreakdownOutput struct {
	Period  Period
	Wallets []WalletSlice
}

// WalletBreakdownUseCase aggregates period activity per wallet.
type WalletBreakdownUseCase struct {
	repo Repository
}

// NewWalletBreakdownUseCase creates a new WalletBreakdownUseCase instance.
func NewWalletBreakdownUseCase(repo Repository) *WalletBreakdownUseCase {
	return &WalletBreakdownUseCase{repo: repo}
}

// Execute computes the breakdown, most active wallet first.
func (uc *WalletBreakdownUseCase) Execute(ctx context.Context, input WalletBreakdownInput) (*WalletBreakdownOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be 'week', 'month' or 'year'",
			domainerror.ErrInvalidPeriod,
		)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now()
	}
	rng, err := RangeFor(input.Period, reference)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.repo.FindByPeriod(ctx, input.UserID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to load period transactions: %w", err)
	}

	byWallet := make(map[uuid.UUID]*WalletSlice)
	var order []uuid.UUID
	for _, t := range transactions {
		slice, ok := byWallet[t.WalletID]
		if !ok {
			slice = &WalletSlice{
				WalletID: t.WalletID,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			byWallet[t.WalletID] = slice
			order = append(order, t.WalletID)
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			slice.Income = slice.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			slice.Expenses = slice.Expenses.Add(t.Amount)
		}
		slice.Count++
	}

	wallets := make([]WalletSlice, 0, len(order))
	for _, id := range order {
		slice := *byWallet[id]
		slice.Net = slice.Income.Sub(slice.Expenses)
		wallets = append(wallets, slice)
	}
	sort.SliceStable(wallets, func(i, j int) bool {
		return wallets[i].Count > wallets[j].Count
	})

	return &WalletBreakdownOutput{
		Period:  input.Period,
		Wallets: wallets,
	}, nil
}
