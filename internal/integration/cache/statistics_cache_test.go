package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
)

func newTestCache(t *testing.T) (*StatisticsCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewStatisticsCache(client, time.Minute), server
}

func sampleSummary() *statistics.Summary {
	return &statistics.Summary{
		Period:           statistics.PeriodWeek,
		TotalIncome:      decimal.RequireFromString("100"),
		TotalExpenses:    decimal.RequireFromString("40"),
		Net:              decimal.RequireFromString("60"),
		TransactionCount: 2,
		TopCategory:      "food",
	}
}

func TestStatisticsCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		c, _ := newTestCache(t)

		summary, err := c.GetSummary(ctx, uuid.New(), statistics.PeriodWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != nil {
			t.Errorf("expected nil on miss, got %+v", summary)
		}
	})

	t.Run("set then get round-trips the summary", func(t *testing.T) {
		c, _ := newTestCache(t)
		userID := uuid.New()

		if err := c.SetSummary(ctx, userID, statistics.PeriodWeek, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := c.GetSummary(ctx, userID, statistics.PeriodWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected cached summary")
		}
		if !got.TotalIncome.Equal(decimal.RequireFromString("100")) || got.TopCategory != "food" {
			t.Errorf("unexpected summary %+v", got)
		}
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		c, server := newTestCache(t)
		userID := uuid.New()

		if err := c.SetSummary(ctx, userID, statistics.PeriodMonth, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		server.FastForward(2 * time.Minute)

		got, err := c.GetSummary(ctx, userID, statistics.PeriodMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected entry to have expired")
		}
	})

	t.Run("invalidate drops all periods for the user only", func(t *testing.T) {
		c, _ := newTestCache(t)
		userID := uuid.New()
		otherID := uuid.New()
		for _, period := range []statistics.Period{statistics.PeriodWeek, statistics.PeriodMonth, statistics.PeriodYear} {
			if err := c.SetSummary(ctx, userID, period, sampleSummary()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := c.SetSummary(ctx, otherID, statistics.PeriodWeek, sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := c.InvalidateUser(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, period := range []statistics.Period{statistics.PeriodWeek, statistics.PeriodMonth, statistics.PeriodYear} {
			got, err := c.GetSummary(ctx, userID, period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("expected %s summary to be invalidated", period)
			}
		}
		got, err := c.GetSummary(ctx, otherID, statistics.PeriodWeek)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Error("expected other user's summary to survive")
		}
	})
}
