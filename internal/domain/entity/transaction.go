// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the two known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single income or expense event affecting exactly
// one wallet's balance. Amount is always positive; the type decides the sign
// of the ledger effect.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WalletID    uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	ImageURL    string // Receipt image, already uploaded
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	walletID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
	description string,
	imageURL string,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		WalletID:    walletID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
