package transactionService

import (
	"Fintar/internal/api/transaction"
	transactionRepository "Fintar/internal/api/transaction/repository"
	"Fintar/internal/entity"
	"Fintar/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID string, tx entity.Transaction) (entity.Transaction, error)
	GetTransactions(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetRecentTransactions(ctx context.Context, userID string, limit int) ([]entity.Transaction, error)
	GetTotals(ctx context.Context, userID string) (entity.Totals, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, userID string, id string) (entity.TransactionType, error)
	BulkDeleteTransactions(ctx context.Context, userID string, ids []string) (int64, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
	now                   func() time.Time
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
		now:                   time.Now,
	}
}
