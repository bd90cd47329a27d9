package transactionHandler

import (
	transactionService "Fintar/internal/api/transaction/service"
	"Fintar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	srv.Get("/transactions", h.middleware.NewTokenMiddleware, h.GetTransactions)
	srv.Get("/transactions/recent", h.middleware.NewTokenMiddleware, h.GetRecentTransactions)
	srv.Put("/transactions/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	srv.Delete("/transactions/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
	srv.Delete("/transactions", h.middleware.NewTokenMiddleware, h.BulkDeleteTransactions)
}
