package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/domain/entity"
)

// WalletOutput represents a wallet in use case outputs.
type WalletOutput struct {
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

func toWalletOutput(w *entity.Wallet) *WalletOutput {
	return &WalletOutput{
		ID:            w.ID,
		UserID:        w.UserID,
		Name:          w.Name,
		ImageURL:      w.ImageURL,
		Balance:       w.Balance,
		TotalIncome:   w.TotalIncome,
		TotalExpenses: w.TotalExpenses,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
