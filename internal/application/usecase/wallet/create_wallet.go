// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// IconFolder is the image CDN folder for wallet icons.
const IconFolder = "wallet-icons"

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID      uuid.UUID
	Name        string
	ImageSource string
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *WalletOutput
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo   adapter.WalletRepository
	imageService adapter.ImageService
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository, imageService adapter.ImageService) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo:   walletRepo,
		imageService: imageService,
	}
}

// Execute performs the wallet creation. New wallets always start with zeroed
// balance and totals; aggregates only ever move through transaction writes.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}

	imageURL := ""
	if input.ImageSource != "" {
		url, err := uc.imageService.Upload(ctx, input.ImageSource, IconFolder)
		if err != nil {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletIconUploadFailed,
				"failed to upload wallet icon",
				domainerror.ErrWalletIconUploadFailed,
			)
		}
		imageURL = url
	}

	wallet := entity.NewWallet(input.UserID, name, imageURL)

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &CreateWalletOutput{Wallet: toWalletOutput(wallet)}, nil
}
