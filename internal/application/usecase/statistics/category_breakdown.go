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

// CategoryBreakdownInput represents the input for an expense category
// breakdown. A zero Reference means "now".
type CategoryBreakdownInput struct {
	UserID    uuid.UUID
	Period    Period
	Reference time.Time
}

// CategorySlice is one category's share of the period's expenses.
type CategorySlice struct {
	Category   string
	Amount     decimal.Decimal
	Count      int
	Percentage decimal.Decimal
}

// CategoryBreakdownOutput represents the output of a category breakdown.
type CategoryBreakdownOutput struct {
	Period        Period
	TotalExpenses decimal.Decimal
	Categories    []CategorySlice
}

// CategoryBreakdownUseCase aggregates expenses by category over a period.
type CategoryBreakdownUseCase struct {
	repo Repository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(repo Repository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{repo: repo}
}

// Execute computes the breakdown. Slices are ordered by descending amount,
// first-encountered category winning ties.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, input CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
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

	totals := make(map[string]*CategorySlice)
	var order []string
	totalExpenses := decimal.Zero
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		slice, ok := totals[t.Category]
		if !ok {
			slice = &CategorySlice{Category: t.Category, Amount: decimal.Zero}
			totals[t.Category] = slice
			order = append(order, t.Category)
		}
		slice.Amount = slice.Amount.Add(t.Amount)
		slice.Count++
		totalExpenses = totalExpenses.Add(t.Amount)
	}

	slices := make([]CategorySlice, 0, len(order))
	for _, category := range order {
		slice := *totals[category]
		if totalExpenses.IsPositive() {
			slice.Percentage = slice.Amount.Div(totalExpenses).Mul(decimal.NewFromInt(100)).Round(2)
		} else {
			slice.Percentage = decimal.Zero
		}
		slices = append(slices, slice)
	}
	// Stable sort keeps the first-encountered category ahead on equal amounts.
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Amount.GreaterThan(slices[j].Amount)
	})

	return &CategoryBreakdownOutput{
		Period:        input.Period,
		TotalExpenses: totalExpenses,
		Categories:    slices,
	}, nil
}
