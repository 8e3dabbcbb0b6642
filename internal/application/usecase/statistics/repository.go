// Package statistics contains period summary and breakdown use cases.
package statistics

import (
	"context"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// Repository defines the data access the statistics use cases need.
type Repository interface {
	// FindByPeriod returns all of a user's transactions whose date falls
	// inside the period range, newest first.
	FindByPeriod(ctx context.Context, userID uuid.UUID, rng PeriodRange) ([]*entity.Transaction, error)
}

// Cache is a read-through store for computed summaries. A miss is reported
// as (nil, nil); cache failures never fail the summary request.
type Cache interface {
	// GetSummary returns the cached summary for the user and period, or nil
	// on a miss.
	GetSummary(ctx context.Context, userID uuid.UUID, period Period) (*Summary, error)

	// SetSummary stores the summary for the user and period.
	SetSummary(ctx context.Context, userID uuid.UUID, period Period, summary *Summary) error
}
