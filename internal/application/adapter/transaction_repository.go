// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	WalletID  *uuid.UUID
	Type      *entity.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByDateRange retrieves all transactions for a user whose date falls
	// within [start, end], newest first.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindByWallet retrieves all transactions referencing a wallet.
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByWallet soft-deletes all transactions referencing a wallet.
	// Returns the count of deleted transactions.
	DeleteByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
}
