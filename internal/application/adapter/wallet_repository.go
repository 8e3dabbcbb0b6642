// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// WalletAggregates holds the three aggregate fields the ledger engine keeps
// consistent. They are always written together in a single update.
type WalletAggregates struct {
	Balance       decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// FindByUser retrieves all wallets for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// Update updates a wallet's descriptive fields (name, icon).
	Update(ctx context.Context, wallet *entity.Wallet) error

	// UpdateAggregates writes balance, total income and total expenses in one
	// combined update. Either all three fields change or none do.
	UpdateAggregates(ctx context.Context, id uuid.UUID, aggregates WalletAggregates) error

	// Delete removes a wallet from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
