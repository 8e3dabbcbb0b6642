package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet in the database.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Create(walletModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a wallet by its ID.
func (r *walletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// FindByUser retrieves all wallets belonging to a user, oldest first.
func (r *walletRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, result.Error
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i, wm := range walletModels {
		wallets[i] = wm.ToEntity()
	}
	return wallets, nil
}

// Update updates an existing wallet in the database.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Save(walletModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}

// UpdateAggregates writes balance and totals in a single statement so a
// ledger movement is never half applied.
func (r *walletRepository) UpdateAggregates(ctx context.Context, id uuid.UUID, aggregates adapter.WalletAggregates) error {
	result := r.db.WithContext(ctx).Model(&model.WalletModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":        aggregates.Balance,
			"total_income":   aggregates.TotalIncome,
			"total_expenses": aggregates.TotalExpenses,
			"updated_at":     gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}

// Delete removes a wallet from the database.
func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WalletModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}
