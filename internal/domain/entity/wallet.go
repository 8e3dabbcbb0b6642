// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a named money container owned by a user. Its aggregate
// fields (Balance, TotalIncome, TotalExpenses) are mutated exclusively by the
// ledger engine in response to transaction lifecycle events.
type Wallet struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	ImageURL      string
	Balance       decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWallet creates a new Wallet entity with zeroed aggregates.
func NewWallet(userID uuid.UUID, name, imageURL string) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		ImageURL:      imageURL,
		Balance:       decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
