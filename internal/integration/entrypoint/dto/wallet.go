package dto

import (
	"time"

	"github.com/wallet-tracker/backend/internal/application/usecase/wallet"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Image string `json:"image,omitempty"`
}

// UpdateWalletRequest represents the request body for wallet update.
type UpdateWalletRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Image *string `json:"image,omitempty"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url,omitempty"`
	Balance       string    `json:"balance"`
	TotalIncome   string    `json:"total_income"`
	TotalExpenses string    `json:"total_expenses"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for listing wallets.
type WalletListResponse struct {
	Wallets      []WalletResponse `json:"wallets"`
	TotalBalance string           `json:"total_balance"`
}

// DeleteWalletResponse represents the response for wallet deletion.
type DeleteWalletResponse struct {
	DeletedTransactions int64 `json:"deleted_transactions"`
}

// ToWalletResponse converts a use case wallet output to a response DTO.
func ToWalletResponse(w *wallet.WalletOutput) WalletResponse {
	return WalletResponse{
		ID:            w.ID.String(),
		UserID:        w.UserID.String(),
		Name:          w.Name,
		ImageURL:      w.ImageURL,
		Balance:       w.Balance.String(),
		TotalIncome:   w.TotalIncome.String(),
		TotalExpenses: w.TotalExpenses.String(),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

// ToWalletListResponse converts a list output to a response DTO.
func ToWalletListResponse(output *wallet.ListWalletsOutput) WalletListResponse {
	wallets := make([]WalletResponse, len(output.Wallets))
	for i, w := range output.Wallets {
		wallets[i] = ToWalletResponse(w)
	}
	return WalletListResponse{
		Wallets:      wallets,
		TotalBalance: output.TotalBalance.String(),
	}
}
