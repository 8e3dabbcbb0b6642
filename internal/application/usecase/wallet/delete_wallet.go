package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteWalletOutput reports how many transactions the cascade removed.
type DeleteWalletOutput struct {
	DeletedTransactions int64
}

// DeleteWalletUseCase handles wallet deletion. Deleting a wallet removes all
// transactions that reference it first, so no transaction ever points at a
// missing wallet. The reverse order would leave orphans if the second step
// failed.
type DeleteWalletUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatisticsInvalidator
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatisticsInvalidator,
) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
	}
}

// Execute performs the cascading wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
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

	deleted, err := uc.transactionRepo.DeleteByWallet(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete wallet transactions: %w", err)
	}

	if err := uc.walletRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete wallet: %w", err)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.WarnContext(ctx, "failed to invalidate statistics cache", "user_id", input.UserID, "error", err)
		}
	}

	return &DeleteWalletOutput{DeletedTransactions: deleted}, nil
}
