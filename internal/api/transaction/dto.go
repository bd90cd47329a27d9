package transaction

type UpdateTransactionRequest struct {
	ID          string `json:"-"`
	UserID      string `json:"-"`
	Type        string `json:"type" validate:"required,oneof=expense income asset"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

type TotalsResponse struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Assets   int64 `json:"assets"`
	NetWorth int64 `json:"net_worth"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

type DeleteResponse struct {
	Message     string `json:"message"`
	DeletedFrom string `json:"deleted_from,omitempty"`
	Deleted     int64  `json:"deleted_count"`
}
