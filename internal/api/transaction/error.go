package transaction

import "Fintar/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransaction     = response.NewError(400, "invalid transaction data")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidCategory        = response.NewError(400, "invalid category")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidDescription     = response.NewError(400, "description is required")
	ErrInvalidName            = response.NewError(400, "asset name is required")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	ErrEmptyIDs               = response.NewError(400, "transaction ids are required")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrListTransactions       = response.NewError(500, "failed to list transactions")
)
