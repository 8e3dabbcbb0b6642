package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpdateWalletInput represents the input for wallet updates. Nil pointer
// fields are left unchanged. Balance and totals are not updatable here; they
// belong to the transaction lifecycle.
type UpdateWalletInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        *string
	ImageSource *string
}

// UpdateWalletOutput represents the output of wallet updates.
type UpdateWalletOutput struct {
	Wallet *WalletOutput
}

// UpdateWalletUseCase handles wallet metadata updates.
type UpdateWalletUseCase struct {
	walletRepo   adapter.WalletRepository
	imageService adapter.ImageService
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository, imageService adapter.ImageService) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo:   walletRepo,
		imageService: imageService,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNameRequired,
				"wallet name is required",
				domainerror.ErrWalletNameRequired,
			)
		}
		wallet.Name = name
	}

	if input.ImageSource != nil && *input.ImageSource != "" {
		url, err := uc.imageService.Upload(ctx, *input.ImageSource, IconFolder)
		if err != nil {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletIconUploadFailed,
				"failed to upload wallet icon",
				domainerror.ErrWalletIconUploadFailed,
			)
		}
		wallet.ImageURL = url
	}

	wallet.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{Wallet: toWalletOutput(wallet)}, nil
}
