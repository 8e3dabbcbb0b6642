package statistics

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// fakeStatsRepo serves canned transactions and records the requested range.
type fakeStatsRepo struct {
	transactions []*entity.Transaction
	lastRange    PeriodRange
	calls        int
}

func (r *fakeStatsRepo) FindByPeriod(ctx context.Context, userID uuid.UUID, rng PeriodRange) ([]*entity.Transaction, error) {
	r.calls++
	r.lastRange = rng
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && rng.Contains(t.Date) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

// fakeSummaryCache is an in-memory summary cache.
type fakeSummaryCache struct {
	entries map[string]*Summary
	sets    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]*Summary)}
}

func (c *fakeSummaryCache) key(userID uuid.UUID, period Period) string {
	return userID.String() + ":" + string(period)
}

func (c *fakeSummaryCache) GetSummary(ctx context.Context, userID uuid.UUID, period Period) (*Summary, error) {
	return c.entries[c.key(userID, period)], nil
}

func (c *fakeSummaryCache) SetSummary(ctx context.Context, userID uuid.UUID, period Period, summary *Summary) error {
	c.sets++
	c.entries[c.key(userID, period)] = summary
	return nil
}

func makeTransaction(userID, walletID uuid.UUID, transactionType entity.TransactionType, amount, category string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, walletID, transactionType, decimal.RequireFromString(amount), category, date, "", "")
}

func TestSummarize(t *testing.T) {
	userID := uuid.New()
	walletID := uuid.New()
	// Wednesday, 2026-08-12.
	reference := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

	t.Run("computes totals, net, average and top category", func(t *testing.T) {
		repo := &fakeStatsRepo{transactions: []*entity.Transaction{
			makeTransaction(userID, walletID, entity.TransactionTypeIncome, "100", "salary", reference),
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "30", "food", reference.Add(-24*time.Hour)),
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "20", "food", reference.Add(-36*time.Hour)),
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "50", "transport", reference.Add(-48*time.Hour)),
		}}
		uc := NewSummarizeUseCase(repo, nil)

		out, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: PeriodWeek, Reference: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := out.Summary
		if !s.TotalIncome.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected income 100, got %s", s.TotalIncome)
		}
		if !s.TotalExpenses.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected expenses 100, got %s", s.TotalExpenses)
		}
		if !s.Net.Equal(decimal.Zero) {
			t.Errorf("expected net 0, got %s", s.Net)
		}
		if s.TransactionCount != 4 {
			t.Errorf("expected 4 transactions, got %d", s.TransactionCount)
		}
		if !s.AverageTransaction.Equal(decimal.RequireFromString("50")) {
			t.Errorf("expected average 50, got %s", s.AverageTransaction)
		}
		// food appears twice; transport once with the larger single amount.
		// Frequency wins.
		if s.TopCategory != "food" {
			t.Errorf("expected top category food, got %s", s.TopCategory)
		}
		if len(s.Chart) != 7 {
			t.Errorf("expected 7 chart points, got %d", len(s.Chart))
		}
		if len(s.RecentTransactions) != 4 {
			t.Errorf("expected 4 recent transactions, got %d", len(s.RecentTransactions))
		}
	})

	t.Run("chart buckets place amounts on their day", func(t *testing.T) {
		repo := &fakeStatsRepo{transactions: []*entity.Transaction{
			// Wednesday is bucket index 3 in a Sunday-start week.
			makeTransaction(userID, walletID, entity.TransactionTypeIncome, "40", "", reference),
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "25", "food", reference),
		}}
		uc := NewSummarizeUseCase(repo, nil)

		out, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: PeriodWeek, Reference: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, point := range out.Summary.Chart {
			wantExpenses, wantNet := decimal.Zero, decimal.Zero
			if i == 3 {
				wantExpenses = decimal.RequireFromString("25")
				wantNet = decimal.RequireFromString("15")
			}
			if !point.Expenses.Equal(wantExpenses) {
				t.Errorf("bucket %d (%s): expected expenses %s, got %s", i, point.Label, wantExpenses, point.Expenses)
			}
			if !point.Net.Equal(wantNet) {
				t.Errorf("bucket %d (%s): expected net %s, got %s", i, point.Label, wantNet, point.Net)
			}
		}
	})

	t.Run("empty period falls back to default top category", func(t *testing.T) {
		uc := NewSummarizeUseCase(&fakeStatsRepo{}, nil)

		out, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: PeriodMonth, Reference: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := out.Summary
		if s.TopCategory != DefaultTopCategory {
			t.Errorf("expected top category %s, got %s", DefaultTopCategory, s.TopCategory)
		}
		if !s.AverageTransaction.IsZero() {
			t.Errorf("expected zero average, got %s", s.AverageTransaction)
		}
		if len(s.Chart) != 5 {
			t.Errorf("expected 5 chart points for August, got %d", len(s.Chart))
		}
	})

	t.Run("tie on category counts keeps the newest-first winner", func(t *testing.T) {
		repo := &fakeStatsRepo{transactions: []*entity.Transaction{
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "40", "food", reference),
			makeTransaction(userID, walletID, entity.TransactionTypeExpense, "90", "transport", reference.Add(-time.Hour)),
		}}
		uc := NewSummarizeUseCase(repo, nil)

		out, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: PeriodWeek, Reference: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.TopCategory != "food" {
			t.Errorf("expected top category food, got %s", out.Summary.TopCategory)
		}
	})

	t.Run("recent transactions are capped", func(t *testing.T) {
		repo := &fakeStatsRepo{}
		for i := 0; i < 25; i++ {
			repo.transactions = append(repo.transactions,
				makeTransaction(userID, walletID, entity.TransactionTypeIncome, "1", "", reference.Add(-time.Duration(i)*time.Minute)))
		}
		uc := NewSummarizeUseCase(repo, nil)

		out, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: PeriodWeek, Reference: reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summary.RecentTransactions) != RecentTransactionLimit {
			t.Errorf("expected %d recent transactions, got %d", RecentTransactionLimit, len(out.Summary.RecentTransactions))
		}
		if out.Summary.TransactionCount != 25 {
			t.Errorf("expected count 25, got %d", out.Summary.TransactionCount)
		}
	})

	t.Run("second request is served from cache", func(t *testing.T) {
		repo := &fakeStatsRepo{transactions: []*entity.Transaction{
			makeTransaction(userID, walletID, entity.TransactionTypeIncome, "10", "", reference),
		}}
		cache := newFakeSummaryCache()
		uc := NewSummarizeUseCase(repo, cache)
		input := SummarizeInput{UserID: userID, Period: PeriodWeek, Reference: reference}

		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.calls)
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
		if !first.Summary.TotalIncome.Equal(second.Summary.TotalIncome) {
			t.Error("expected identical summaries")
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := NewSummarizeUseCase(&fakeStatsRepo{}, nil)

		_, err := uc.Execute(context.Background(), SummarizeInput{UserID: userID, Period: Period("decade")})

		var statsErr *domainerror.StatisticsError
		if !errors.As(err, &statsErr) || statsErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Fatalf("expected invalid period error, got %v", err)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	userID := uuid.New()
	walletID := uuid.New()
	reference := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepo{transactions: []*entity.Transaction{
		makeTransaction(userID, walletID, entity.TransactionTypeExpense, "60", "food", reference),
		makeTransaction(userID, walletID, entity.TransactionTypeExpense, "20", "food", reference.Add(-time.Hour)),
		makeTransaction(userID, walletID, entity.TransactionTypeExpense, "20", "transport", reference.Add(-2*time.Hour)),
		makeTransaction(userID, walletID, entity.TransactionTypeIncome, "500", "salary", reference),
	}}
	uc := NewCategoryBreakdownUseCase(repo)

	out, err := uc.Execute(context.Background(), CategoryBreakdownInput{UserID: userID, Period: PeriodWeek, Reference: reference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TotalExpenses.Equal(decimal.RequireFromString("100")) {
		t.Errorf("expected total expenses 100, got %s", out.TotalExpenses)
	}
	if len(out.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(out.Categories))
	}
	if out.Categories[0].Category != "food" || out.Categories[0].Count != 2 {
		t.Errorf("expected food first with 2 entries, got %+v", out.Categories[0])
	}
	if !out.Categories[0].Percentage.Equal(decimal.RequireFromString("80")) {
		t.Errorf("expected food at 80%%, got %s", out.Categories[0].Percentage)
	}
	if !out.Categories[1].Percentage.Equal(decimal.RequireFromString("20")) {
		t.Errorf("expected transport at 20%%, got %s", out.Categories[1].Percentage)
	}
}

func TestWalletBreakdown(t *testing.T) {
	userID := uuid.New()
	busyWallet := uuid.New()
	quietWallet := uuid.New()
	reference := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

	repo := &fakeStatsRepo{transactions: []*entity.Transaction{
		makeTransaction(userID, busyWallet, entity.TransactionTypeIncome, "100", "", reference),
		makeTransaction(userID, busyWallet, entity.TransactionTypeExpense, "40", "food", reference.Add(-time.Hour)),
		makeTransaction(userID, quietWallet, entity.TransactionTypeExpense, "10", "food", reference.Add(-2*time.Hour)),
	}}
	uc := NewWalletBreakdownUseCase(repo)

	out, err := uc.Execute(context.Background(), WalletBreakdownInput{UserID: userID, Period: PeriodWeek, Reference: reference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Wallets) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(out.Wallets))
	}
	if out.Wallets[0].WalletID != busyWallet || out.Wallets[0].Count != 2 {
		t.Errorf("expected busy wallet first, got %+v", out.Wallets[0])
	}
	if !out.Wallets[0].Net.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected busy wallet net 60, got %s", out.Wallets[0].Net)
	}
	if !out.Wallets[1].Net.Equal(decimal.RequireFromString("-10")) {
		t.Errorf("expected quiet wallet net -10, got %s", out.Wallets[1].Net)
	}
}
