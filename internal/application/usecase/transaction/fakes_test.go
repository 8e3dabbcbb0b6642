package transaction

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-tracker/backend/internal/application/adapter"
	"github.com/wallet-tracker/backend/internal/domain/entity"
	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// fakeWalletRepo is an in-memory wallet repository.
type fakeWalletRepo struct {
	wallets map[uuid.UUID]*entity.Wallet
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[uuid.UUID]*entity.Wallet)}
}

func (r *fakeWalletRepo) add(userID uuid.UUID, balance string) *entity.Wallet {
	w := entity.NewWallet(userID, "main", "")
	w.Balance = decimal.RequireFromString(balance)
	r.wallets[w.ID] = w
	return w
}

func (r *fakeWalletRepo) Create(ctx context.Context, wallet *entity.Wallet) error {
	r.wallets[wallet.ID] = wallet
	return nil
}

func (r *fakeWalletRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	w, ok := r.wallets[id]
	if !ok {
		return nil, domainerror.ErrWalletNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWalletRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var result []*entity.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			clone := *w
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeWalletRepo) Update(ctx context.Context, wallet *entity.Wallet) error {
	r.wallets[wallet.ID] = wallet
	return nil
}

func (r *fakeWalletRepo) UpdateAggregates(ctx context.Context, id uuid.UUID, aggregates adapter.WalletAggregates) error {
	w, ok := r.wallets[id]
	if !ok {
		return domainerror.ErrWalletNotFound
	}
	w.Balance = aggregates.Balance
	w.TotalIncome = aggregates.TotalIncome
	w.TotalExpenses = aggregates.TotalExpenses
	return nil
}

func (r *fakeWalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.wallets, id)
	return nil
}

// fakeTransactionRepo is an in-memory transaction repository that counts
// write calls so tests can assert nothing was stored.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	createCalls  int
	updateCalls  int
	deleteCalls  int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.createCalls++
	clone := *transaction
	r.transactions[transaction.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.WalletID != nil && t.WalletID != *filter.WalletID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		clone := *t
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	return &entity.TransactionListResult{
		Transactions: matched,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

func (r *fakeTransactionRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.WalletID == walletID {
			clone := *t
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.updateCalls++
	clone := *transaction
	r.transactions[transaction.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleteCalls++
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	for id, t := range r.transactions {
		if t.WalletID == walletID {
			delete(r.transactions, id)
			count++
		}
	}
	return count, nil
}

// fakeImageService records uploads and can be told to fail.
type fakeImageService struct {
	fail    bool
	uploads int
}

func (s *fakeImageService) Upload(ctx context.Context, source, folder string) (string, error) {
	if s.fail {
		return "", errors.New("cdn unavailable")
	}
	s.uploads++
	return "https://cdn.example.com/" + folder + "/" + source, nil
}

// fakeStatsCache records invalidations.
type fakeStatsCache struct {
	invalidated []uuid.UUID
}

func (c *fakeStatsCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}
