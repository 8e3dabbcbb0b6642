package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

const (
	// RecentTransactionLimit caps how many transactions a summary carries.
	RecentTransactionLimit = 20

	// DefaultTopCategory is reported when the period has no expenses.
	DefaultTopCategory = "food"
)

// SummarizeInput represents the input for a period summary. A zero Reference
// means "now".
type SummarizeInput struct {
	UserID    uuid.UUID
	Period    Period
	Reference time.Time
}

// ChartPoint is one bucket of the summary chart.
type ChartPoint struct {
	Label    string          `json:"label"`
	Net      decimal.Decimal `json:"net"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// SummaryTransaction is a transaction as carried inside a summary.
type SummaryTransaction struct {
	ID          uuid.UUID              `json:"id"`
	WalletID    uuid.UUID              `json:"walletId"`
	Type        entity.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
}

// Summary is the computed view of a user's activity over a period.
type Summary struct {
	Period             Period               `json:"period"`
	Start              time.Time            `json:"start"`
	End                time.Time            `json:"end"`
	TotalIncome        decimal.Decimal      `json:"totalIncome"`
	TotalExpenses      decimal.Decimal      `json:"totalExpenses"`
	Net                decimal.Decimal      `json:"net"`
	TransactionCount   int                  `json:"transactionCount"`
	AverageTransaction decimal.Decimal      `json:"averageTransaction"`
	TopCategory        string               `json:"topCategory"`
	Chart              []ChartPoint         `json:"chart"`
	RecentTransactions []SummaryTransaction `json:"recentTransactions"`
}

// SummarizeOutput represents the output of a period summary.
type SummarizeOutput struct {
	Summary *Summary
}

// SummarizeUseCase computes period summaries. Results are served through the
// cache when one is configured; writes elsewhere invalidate the cache so a
// hit is never older than the last mutation.
type SummarizeUseCase struct {
	repo  Repository
	cache Cache
}

// NewSummarizeUseCase creates a new SummarizeUseCase instance.
func NewSummarizeUseCase(repo Repository, cache Cache) *SummarizeUseCase {
	return &SummarizeUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute computes the summary for the requested period.
func (uc *SummarizeUseCase) Execute(ctx context.Context, input SummarizeInput) (*SummarizeOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be 'week', 'month' or 'year'",
			domainerror.ErrInvalidPeriod,
		)
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetSummary(ctx, input.UserID, input.Period)
		if err != nil {
			slog.WarnContext(ctx, "failed to read statistics cache", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &SummarizeOutput{Summary: cached}, nil
		}
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

	summary := buildSummary(input.Period, rng, transactions)

	if uc.cache != nil {
		if err := uc.cache.SetSummary(ctx, input.UserID, input.Period, summary); err != nil {
			slog.WarnContext(ctx, "failed to write statistics cache", "user_id", input.UserID, "error", err)
		}
	}

	return &SummarizeOutput{Summary: summary}, nil
}

// buildSummary folds the transactions into totals, the bucket chart, the most
// frequent expense category and the recent slice. Transactions arrive newest
// first.
func buildSummary(period Period, rng PeriodRange, transactions []*entity.Transaction) *Summary {
	buckets := BucketsFor(period, rng)
	chart := make([]ChartPoint, len(buckets))
	for i, b := range buckets {
		chart[i] = ChartPoint{Label: b.Label, Net: decimal.Zero, Income: decimal.Zero, Expenses: decimal.Zero}
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	categoryCounts := make(map[string]int)
	var categoryOrder []string

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(t.Amount)
			if _, seen := categoryCounts[t.Category]; !seen {
				categoryOrder = append(categoryOrder, t.Category)
			}
			categoryCounts[t.Category]++
		}

		for i, b := range buckets {
			if b.Range.Contains(t.Date) {
				if t.Type == entity.TransactionTypeIncome {
					chart[i].Income = chart[i].Income.Add(t.Amount)
				} else {
					chart[i].Expenses = chart[i].Expenses.Add(t.Amount)
				}
				break
			}
		}
	}

	for i := range chart {
		chart[i].Net = chart[i].Income.Sub(chart[i].Expenses)
	}

	count := len(transactions)
	average := decimal.Zero
	if count > 0 {
		average = totalIncome.Add(totalExpenses).Div(decimal.NewFromInt(int64(count)))
	}

	// The top category is the one appearing most often, not the one that
	// accumulated the largest amount.
	topCategory := DefaultTopCategory
	topCount := 0
	for _, category := range categoryOrder {
		// Strictly-greater keeps the first category encountered on ties.
		if categoryCounts[category] > topCount {
			topCount = categoryCounts[category]
			topCategory = category
		}
	}

	recent := make([]SummaryTransaction, 0, min(count, RecentTransactionLimit))
	for _, t := range transactions[:min(count, RecentTransactionLimit)] {
		recent = append(recent, SummaryTransaction{
			ID:          t.ID,
			WalletID:    t.WalletID,
			Type:        t.Type,
			Amount:      t.Amount,
			Category:    t.Category,
			Date:        t.Date,
			Description: t.Description,
		})
	}

	return &Summary{
		Period:             period,
		Start:              rng.Start,
		End:                rng.End,
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Net:                totalIncome.Sub(totalExpenses),
		TransactionCount:   count,
		AverageTransaction: average,
		TopCategory:        topCategory,
		Chart:              chart,
		RecentTransactions: recent,
	}
}
