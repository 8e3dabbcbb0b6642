package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	"github.com/wallet-tracker/backend/internal/integration/persistence/model"
)

// statisticsRepository implements the statistics.Repository interface.
type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository instance.
func NewStatisticsRepository(db *gorm.DB) statistics.Repository {
	return &statisticsRepository{
		db: db,
	}
}

// FindByPeriod returns all of a user's transactions inside the period range,
// newest first.
func (r *statisticsRepository) FindByPeriod(ctx context.Context, userID uuid.UUID, rng statistics.PeriodRange) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, rng.Start, rng.End).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}
