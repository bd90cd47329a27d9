package transactionService

import (
	"Fintar/internal/api/transaction"
	transactionRepository "Fintar/internal/api/transaction/repository"
	"Fintar/internal/entity"
	"Fintar/pkg/utils"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactions struct {
	inserted  []entity.Transaction
	insertErr error
	updateErr error
	deleted   int64
	listLimit int
}

func (f *fakeTransactions) Insert(_ context.Context, tx entity.Transaction) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, tx)
	return nil
}

func (f *fakeTransactions) ListAll(_ context.Context, _ string) ([]entity.Transaction, error) {
	return f.inserted, nil
}

func (f *fakeTransactions) ListRecent(_ context.Context, _ string, limit int) ([]entity.Transaction, error) {
	f.listLimit = limit
	return f.inserted, nil
}

func (f *fakeTransactions) Totals(_ context.Context, _ string) (entity.Totals, error) {
	return entity.ComputeTotals(f.inserted), nil
}

func (f *fakeTransactions) Update(_ context.Context, _ string, _ string, _ entity.TransactionType, _ int64, _ string, _ string) error {
	return f.updateErr
}

func (f *fakeTransactions) Delete(_ context.Context, _ string, id string) (entity.TransactionType, error) {
	if id == "missing" {
		return "", transaction.ErrTransactionNotFound
	}
	return entity.TransactionTypeExpense, nil
}

func (f *fakeTransactions) BulkDelete(_ context.Context, _ string, ids []string) (int64, error) {
	f.deleted = int64(len(ids))
	return f.deleted, nil
}

type fakeRepository struct {
	txs        *fakeTransactions
	committed  int
	rolledBack int
}

func (r *fakeRepository) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: r.txs,
		Commit:      func() error { r.committed++; return nil },
		Rollback:    func() error { r.rolledBack++; return nil },
	}, nil
}

func newService(repo transactionRepository.Repository) *transactionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := NewTransactionService(logger, repo, utils.New()).(*transactionService)
	s.now = func() time.Time { return time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateTransactionAssignsIdentity(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{}}
	s := newService(repo)

	input := &entity.Expense{
		Amount:      25000,
		Category:    entity.ExpenseCategoryFood,
		Description: "makan siang",
		Date:        time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}
	stored, err := s.CreateTransaction(context.Background(), "user-1", input)
	require.NoError(t, err)

	expense, ok := stored.(*entity.Expense)
	require.True(t, ok)
	assert.Len(t, expense.ID, 26)
	assert.Equal(t, "user-1", expense.UserID)
	assert.Equal(t, s.now(), expense.CreatedAt)
	assert.Empty(t, input.ID, "input must not be mutated")
	assert.Len(t, repo.txs.inserted, 1)
}

func TestCreateTransactionRejectsInvalid(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{}}
	s := newService(repo)

	_, err := s.CreateTransaction(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, transaction.ErrInvalidTransaction)

	_, err = s.CreateTransaction(context.Background(), "user-1", &entity.Income{
		Amount:      0,
		Category:    entity.IncomeCategorySalary,
		Description: "gaji",
		Date:        time.Now(),
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
	assert.Empty(t, repo.txs.inserted)
}

func TestCreateTransactionStoreFailure(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{insertErr: errors.New("connection reset")}}
	s := newService(repo)

	_, err := s.CreateTransaction(context.Background(), "user-1", entity.NewAsset("laptop", 8_000_000, time.Now()))
	assert.ErrorIs(t, err, transaction.ErrCreateTransaction)
}

func TestGetRecentTransactionsClampsLimit(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{}}
	s := newService(repo)

	_, err := s.GetRecentTransactions(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.txs.listLimit)

	_, err = s.GetRecentTransactions(context.Background(), "user-1", 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxRecentLimit, repo.txs.listLimit)
}

func TestUpdateTransaction(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{}}
	s := newService(repo)

	err := s.UpdateTransaction(context.Background(), transaction.UpdateTransactionRequest{
		ID: "a", UserID: "user-1", Type: "expense", Amount: 1000, Description: "kopi", Category: "salary",
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidCategory)

	err = s.UpdateTransaction(context.Background(), transaction.UpdateTransactionRequest{
		ID: "a", UserID: "user-1", Type: "expense", Amount: 1000, Description: "kopi", Category: "food",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.committed)

	repo.txs.updateErr = transaction.ErrTransactionNotFound
	err = s.UpdateTransaction(context.Background(), transaction.UpdateTransactionRequest{
		ID: "b", UserID: "user-1", Type: "income", Amount: 1000, Description: "gaji", Category: "salary",
	})
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	assert.Equal(t, 1, repo.rolledBack)
}

func TestDeleteTransactions(t *testing.T) {
	repo := &fakeRepository{txs: &fakeTransactions{}}
	s := newService(repo)

	txType, err := s.DeleteTransaction(context.Background(), "user-1", "a")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeExpense, txType)

	_, err = s.DeleteTransaction(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)

	_, err = s.BulkDeleteTransactions(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, transaction.ErrEmptyIDs)

	deleted, err := s.BulkDeleteTransactions(context.Background(), "user-1", []string{"a", "b"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
	assert.Equal(t, 1, repo.committed)
}
