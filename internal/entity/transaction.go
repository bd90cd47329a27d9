package entity

import (
	"Fintar/internal/api/transaction"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeAsset   TransactionType = "asset"
)

type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "food"
	ExpenseCategoryTransport     ExpenseCategory = "transport"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryBills         ExpenseCategory = "bills"
	ExpenseCategoryEntertainment ExpenseCategory = "entertainment"
	ExpenseCategoryHealth        ExpenseCategory = "health"
	ExpenseCategoryEducation     ExpenseCategory = "education"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

type IncomeCategory string

const (
	IncomeCategorySalary     IncomeCategory = "salary"
	IncomeCategoryFreelance  IncomeCategory = "freelance"
	IncomeCategoryBusiness   IncomeCategory = "business"
	IncomeCategoryInvestment IncomeCategory = "investment"
	IncomeCategoryOther      IncomeCategory = "other"
)

func IsValidExpenseCategory(category string) bool {
	switch ExpenseCategory(category) {
	case ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryShopping, ExpenseCategoryBills,
		ExpenseCategoryEntertainment, ExpenseCategoryHealth, ExpenseCategoryEducation, ExpenseCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidIncomeCategory(category string) bool {
	switch IncomeCategory(category) {
	case IncomeCategorySalary, IncomeCategoryFreelance, IncomeCategoryBusiness,
		IncomeCategoryInvestment, IncomeCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidCategory(transactionType, category string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeExpense:
		return IsValidExpenseCategory(category)
	case TransactionTypeIncome:
		return IsValidIncomeCategory(category)
	case TransactionTypeAsset:
		return true
	default:
		return false
	}
}

// Transaction is one of *Expense, *Income or *Asset.
type Transaction interface {
	Kind() TransactionType
	TransactionID() string
	OccurredOn() time.Time
	// Value is the amount counted in totals: the amount for expenses and
	// income, the purchase price for assets.
	Value() int64
	Validate() error
	isTransaction()
}

type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      int64           `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (e *Expense) Kind() TransactionType { return TransactionTypeExpense }
func (e *Expense) TransactionID() string { return e.ID }
func (e *Expense) OccurredOn() time.Time { return e.Date }
func (e *Expense) Value() int64          { return e.Amount }
func (e *Expense) isTransaction()        {}

func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}
	if !IsValidExpenseCategory(string(e.Category)) {
		return transaction.ErrInvalidCategory
	}
	if strings.TrimSpace(e.Description) == "" {
		return transaction.ErrInvalidDescription
	}
	if e.Date.IsZero() {
		return transaction.ErrInvalidDate
	}
	return nil
}

type Income struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Amount      int64          `json:"amount"`
	Category    IncomeCategory `json:"category"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (i *Income) Kind() TransactionType { return TransactionTypeIncome }
func (i *Income) TransactionID() string { return i.ID }
func (i *Income) OccurredOn() time.Time { return i.Date }
func (i *Income) Value() int64          { return i.Amount }
func (i *Income) isTransaction()        {}

func (i *Income) Validate() error {
	if i.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}
	if !IsValidIncomeCategory(string(i.Category)) {
		return transaction.ErrInvalidCategory
	}
	if strings.TrimSpace(i.Description) == "" {
		return transaction.ErrInvalidDescription
	}
	if i.Date.IsZero() {
		return transaction.ErrInvalidDate
	}
	return nil
}

type Asset struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PurchasePrice int64     `json:"purchase_price"`
	CurrentValue  int64     `json:"current_value"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewAsset builds an asset whose current value starts at the purchase price.
func NewAsset(name string, purchasePrice int64, date time.Time) *Asset {
	return &Asset{
		Name:          name,
		PurchasePrice: purchasePrice,
		CurrentValue:  purchasePrice,
		Date:          date,
	}
}

func (a *Asset) Kind() TransactionType { return TransactionTypeAsset }
func (a *Asset) TransactionID() string { return a.ID }
func (a *Asset) OccurredOn() time.Time { return a.Date }
func (a *Asset) Value() int64          { return a.PurchasePrice }
func (a *Asset) isTransaction()        {}

func (a *Asset) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return transaction.ErrInvalidName
	}
	if a.PurchasePrice <= 0 || a.CurrentValue < 0 {
		return transaction.ErrInvalidAmount
	}
	if a.Date.IsZero() {
		return transaction.ErrInvalidDate
	}
	return nil
}

// Category returns the grouping key used in summaries. Assets have no
// category, so their name is used instead.
func Category(tx Transaction) string {
	switch t := tx.(type) {
	case *Expense:
		return string(t.Category)
	case *Income:
		return string(t.Category)
	case *Asset:
		return t.Name
	default:
		return ""
	}
}

// Description returns the human readable label of a transaction.
func Description(tx Transaction) string {
	switch t := tx.(type) {
	case *Expense:
		return t.Description
	case *Income:
		return t.Description
	case *Asset:
		return t.Name
	default:
		return ""
	}
}

type Totals struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Assets   int64 `json:"assets"`
	NetWorth int64 `json:"net_worth"`
}

// ComputeTotals sums a transaction set. Assets count at their current value.
func ComputeTotals(txs []Transaction) Totals {
	var totals Totals
	for _, tx := range txs {
		switch t := tx.(type) {
		case *Expense:
			totals.Expenses += t.Amount
		case *Income:
			totals.Income += t.Amount
		case *Asset:
			totals.Assets += t.CurrentValue
		}
	}
	totals.NetWorth = totals.Income - totals.Expenses + totals.Assets
	return totals
}
