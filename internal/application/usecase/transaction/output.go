// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WalletID    uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		WalletID:    t.WalletID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Date:        t.Date,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
