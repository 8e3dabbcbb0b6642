package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/ledger"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// pointer fields are left unchanged.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WalletID    *uuid.UUID
	Type        *entity.TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Description *string
	ImageSource *string
}

// UpdateTransactionOutput represents the output of transaction updates.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction updates. When a balance-
// critical field changes (type, amount or wallet) the ledger engine reverts
// the old effect and applies the new one before the document is rewritten.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	ledgerEngine    *ledger.Engine
	imageService    adapter.ImageService
	statsCache      adapter.StatisticsInvalidator
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	ledgerEngine *ledger.Engine,
	imageService adapter.ImageService,
	statsCache adapter.StatisticsInvalidator,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		ledgerEngine:    ledgerEngine,
		imageService:    imageService,
		statsCache:      statsCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	// Resolve the target values before validation so partial updates are
	// validated against the full resulting state.
	newType := existing.Type
	if input.Type != nil {
		newType = *input.Type
	}
	newAmount := existing.Amount
	if input.Amount != nil {
		newAmount = *input.Amount
	}
	newWalletID := existing.WalletID
	if input.WalletID != nil {
		newWalletID = *input.WalletID
	}
	newCategory := existing.Category
	if input.Category != nil {
		newCategory = *input.Category
	}
	newDescription := existing.Description
	if input.Description != nil {
		newDescription = *input.Description
	}

	if err := validateTransactionInput(newType, newAmount, newWalletID, newCategory, newDescription); err != nil {
		return nil, err
	}

	criticalChange := newType != existing.Type ||
		!newAmount.Equal(existing.Amount) ||
		newWalletID != existing.WalletID

	if criticalChange {
		if newWalletID != existing.WalletID {
			target, err := uc.walletRepo.FindByID(ctx, newWalletID)
			if err != nil {
				return nil, domainerror.NewWalletError(
					domainerror.ErrCodeWalletNotFound,
					"wallet not found",
					domainerror.ErrWalletNotFound,
				)
			}
			if target.UserID != input.UserID {
				return nil, domainerror.NewWalletError(
					domainerror.ErrCodeNotAuthorizedWallet,
					"wallet does not belong to user",
					domainerror.ErrNotAuthorizedToModifyWallet,
				)
			}
		}
		if err := uc.ledgerEngine.RevertAndReapply(ctx, existing, newAmount, newType, newWalletID); err != nil {
			return nil, err
		}
	}

	existing.Type = newType
	existing.Amount = newAmount
	existing.WalletID = newWalletID
	existing.Category = newCategory
	existing.Description = newDescription
	if input.Date != nil {
		existing.Date = *input.Date
	}

	if input.ImageSource != nil && *input.ImageSource != "" {
		imageURL, uploadErr := uc.imageService.Upload(ctx, *input.ImageSource, ReceiptFolder)
		if uploadErr != nil {
			// Unlike creation there is nothing to compensate: the wallet
			// already reflects the new values and the document keeps its
			// previous receipt.
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeReceiptUploadFailed,
				"failed to upload receipt",
				domainerror.ErrReceiptUploadFailed,
			)
		}
		existing.ImageURL = imageURL
	}

	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.WarnContext(ctx, "failed to invalidate statistics cache", "user_id", input.UserID, "error", err)
		}
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(existing)}, nil
}
