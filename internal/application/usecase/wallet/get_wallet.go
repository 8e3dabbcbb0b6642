package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// GetWalletInput represents the input for fetching a single wallet.
type GetWalletInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// GetWalletOutput represents the output of fetching a single wallet.
type GetWalletOutput struct {
	Wallet *WalletOutput
}

// GetWalletUseCase handles fetching a single wallet.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository) *GetWalletUseCase {
	return &GetWalletUseCase{walletRepo: walletRepo}
}

// Execute fetches the wallet.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			domainerror.ErrWalletNotFound,
		)
	}
	if wallet.UserID != input.UserID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeNotAuthorizedWallet,
			"wallet does not belong to user",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}

	return &GetWalletOutput{Wallet: toWalletOutput(wallet)}, nil
}
