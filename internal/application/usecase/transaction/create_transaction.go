// Package transaction contains transaction-related use cases.
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

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255

	// ReceiptFolder is the image CDN folder for transaction receipts.
	ReceiptFolder = "receipts"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	WalletID    uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	ImageSource string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation. It validates the
// input, applies the balance effect to the wallet through the ledger engine,
// uploads the receipt image, and persists the transaction document. A failed
// receipt upload reverts the wallet effect so balances stay consistent with
// the absent document.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	ledgerEngine    *ledger.Engine
	imageService    adapter.ImageService
	statsCache      adapter.StatisticsInvalidator
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	ledgerEngine *ledger.Engine,
	imageService adapter.ImageService,
	statsCache adapter.StatisticsInvalidator,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		ledgerEngine:    ledgerEngine,
		imageService:    imageService,
		statsCache:      statsCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionInput(input.Type, input.Amount, input.WalletID, input.Category, input.Description); err != nil {
		return nil, err
	}

	// Verify wallet ownership before touching any balance.
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
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

	if err := uc.ledgerEngine.ApplyNewTransaction(ctx, input.WalletID, input.Amount, input.Type); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.WalletID,
		input.Type,
		input.Amount,
		input.Category,
		input.Date,
		input.Description,
		"",
	)

	if input.ImageSource != "" {
		imageURL, uploadErr := uc.imageService.Upload(ctx, input.ImageSource, ReceiptFolder)
		if uploadErr != nil {
			// Compensate: the document will never exist, so undo the
			// wallet effect before surfacing the upload error.
			if revertErr := uc.ledgerEngine.RevertTransaction(ctx, input.WalletID, input.Amount, input.Type); revertErr != nil {
				slog.ErrorContext(ctx, "failed to revert wallet after receipt upload failure",
					"wallet_id", input.WalletID,
					"error", revertErr,
				)
			}
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeReceiptUploadFailed,
				"failed to upload receipt",
				domainerror.ErrReceiptUploadFailed,
			)
		}
		transaction.ImageURL = imageURL
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.invalidateStatistics(ctx, input.UserID)

	return &CreateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}

// invalidateStatistics drops cached summaries after a write. Invalidation
// failures are logged, not surfaced: stale cache entries expire on their own.
func (uc *CreateTransactionUseCase) invalidateStatistics(ctx context.Context, userID uuid.UUID) {
	if uc.statsCache == nil {
		return
	}
	if err := uc.statsCache.InvalidateUser(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate statistics cache", "user_id", userID, "error", err)
	}
}

// validateTransactionInput checks the fields every transaction write must
// carry before any store or wallet call happens.
func validateTransactionInput(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	walletID uuid.UUID,
	category string,
	description string,
) error {
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if walletID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingWallet,
			"wallet is required",
			domainerror.ErrMissingWallet,
		)
	}
	if transactionType == entity.TransactionTypeExpense && category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required for expense transactions",
			domainerror.ErrMissingExpenseCategory,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}
