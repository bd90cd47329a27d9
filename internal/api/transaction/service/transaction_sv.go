package transactionService

import (
	"Fintar/internal/api/transaction"
	"Fintar/internal/entity"
	contextPkg "Fintar/pkg/context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const MaxRecentLimit = 100

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, tx entity.Transaction) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if tx == nil {
		return nil, transaction.ErrInvalidTransaction
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       tx.Kind(),
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return nil, err
	}

	now := s.now()
	ULID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	var stored entity.Transaction
	switch t := tx.(type) {
	case *entity.Expense:
		c := *t
		c.ID, c.UserID, c.CreatedAt = ULID, userID, now
		stored = &c
	case *entity.Income:
		c := *t
		c.ID, c.UserID, c.CreatedAt = ULID, userID, now
		stored = &c
	case *entity.Asset:
		c := *t
		c.ID, c.UserID, c.CreatedAt = ULID, userID, now
		stored = &c
	default:
		return nil, transaction.ErrInvalidTransactionType
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if err := repo.Transaction.Insert(ctx, stored); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       stored.Kind(),
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return nil, transaction.ErrCreateTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         stored.TransactionID(),
		"type":       stored.Kind(),
	}).Info("Transaction created")

	return stored, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.ListAll(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, transaction.ErrListTransactions
	}

	return transactions, nil
}

func (s *transactionService) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 {
		limit = 10
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.ListRecent(ctx, userID, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to list recent transactions")
		return nil, transaction.ErrListTransactions
	}

	return transactions, nil
}

func (s *transactionService) GetTotals(ctx context.Context, userID string) (entity.Totals, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Totals{}, err
	}

	totals, err := repo.Transaction.Totals(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to compute totals")
		return entity.Totals{}, transaction.ErrListTransactions
	}

	return totals, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidCategory(req.Type, req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
			"category":   req.Category,
		}).Warn("Invalid transaction category for type")
		return transaction.ErrInvalidCategory
	}

	if req.Type != string(entity.TransactionTypeAsset) && strings.TrimSpace(req.Description) == "" {
		return transaction.ErrInvalidDescription
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := repo.Rollback(); rbErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rbErr.Error(),
				}).Error("Failed to rollback transaction")
			}
		}
	}()

	err = repo.Transaction.Update(ctx, req.UserID, req.ID, entity.TransactionType(req.Type), req.Amount, req.Description, req.Category)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) || errors.Is(err, transaction.ErrInvalidTransactionType) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return transaction.ErrUpdateTransaction
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return transaction.ErrUpdateTransaction
	}

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string) (entity.TransactionType, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return "", err
	}

	txType, err := repo.Transaction.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return "", transaction.ErrDeleteTransaction
	}

	return txType, nil
}

func (s *transactionService) BulkDeleteTransactions(ctx context.Context, userID string, ids []string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(ids) == 0 {
		return 0, transaction.ErrEmptyIDs
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}

	deleted, err := repo.Transaction.BulkDelete(ctx, userID, ids)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"count":      len(ids),
			"error":      err.Error(),
		}).Error("Failed to bulk delete transactions")
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback transaction")
		}
		return 0, transaction.ErrDeleteTransaction
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, transaction.ErrDeleteTransaction
	}

	return deleted, nil
}
