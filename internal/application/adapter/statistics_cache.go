// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// StatisticsInvalidator invalidates cached statistics for a user. The
// transaction and wallet lifecycle use cases call it after every write so
// summaries never serve data older than the cache TTL across a mutation.
type StatisticsInvalidator interface {
	// InvalidateUser drops all cached period summaries for the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
