// Package cache implements Redis-backed caches for the application layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
)

// StatisticsCache stores computed period summaries in Redis. It implements
// both statistics.Cache and adapter.StatisticsInvalidator.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatisticsCache creates a new StatisticsCache instance.
func NewStatisticsCache(client *redis.Client, ttl time.Duration) *StatisticsCache {
	return &StatisticsCache{
		client: client,
		ttl:    ttl,
	}
}

func summaryKey(userID uuid.UUID, period statistics.Period) string {
	return fmt.Sprintf("stats:%s:%s", userID, period)
}

// GetSummary returns the cached summary, or nil on a miss.
func (c *StatisticsCache) GetSummary(ctx context.Context, userID uuid.UUID, period statistics.Period) (*statistics.Summary, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID, period)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summary statistics.Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

// SetSummary stores the summary with the configured TTL.
func (c *StatisticsCache) SetSummary(ctx context.Context, userID uuid.UUID, period statistics.Period, summary *statistics.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey(userID, period), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// InvalidateUser drops the user's cached summaries for every period.
func (c *StatisticsCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	keys := []string{
		summaryKey(userID, statistics.PeriodWeek),
		summaryKey(userID, statistics.PeriodMonth),
		summaryKey(userID, statistics.PeriodYear),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
