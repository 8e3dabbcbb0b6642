package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID uuid.UUID
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets      []*WalletOutput
	TotalBalance decimal.Decimal
}

// ListWalletsUseCase handles listing a user's wallets.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{walletRepo: walletRepo}
}

// Execute performs the wallet listing.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	outputs := make([]*WalletOutput, 0, len(wallets))
	totalBalance := decimal.Zero
	for _, w := range wallets {
		outputs = append(outputs, toWalletOutput(w))
		totalBalance = totalBalance.Add(w.Balance)
	}

	return &ListWalletsOutput{
		Wallets:      outputs,
		TotalBalance: totalBalance,
	}, nil
}
