package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/application/usecase/ledger"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion. The wallet effect is
// reverted before the document is removed so the wallet never counts a
// transaction that no longer exists.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	ledgerEngine    *ledger.Engine
	statsCache      adapter.StatisticsInvalidator
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	ledgerEngine *ledger.Engine,
	statsCache adapter.StatisticsInvalidator,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		ledgerEngine:    ledgerEngine,
		statsCache:      statsCache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if existing.UserID != input.UserID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.ledgerEngine.RevertTransaction(ctx, existing.WalletID, existing.Amount, existing.Type); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.WarnContext(ctx, "failed to invalidate statistics cache", "user_id", input.UserID, "error", err)
		}
	}

	return nil
}
