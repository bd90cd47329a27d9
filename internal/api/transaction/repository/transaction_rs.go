package transactionRepository

import (
	"Fintar/internal/api/transaction"
	"Fintar/internal/entity"
	contextPkg "Fintar/pkg/context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TransactionRowDB struct {
	ID           sql.NullString `db:"id"`
	Type         sql.NullString `db:"type"`
	Amount       sql.NullInt64  `db:"amount"`
	CurrentValue sql.NullInt64  `db:"current_value"`
	Description  sql.NullString `db:"description"`
	Category     sql.NullString `db:"category"`
	Name         sql.NullString `db:"name"`
	Date         time.Time      `db:"date"`
	CreatedAt    time.Time      `db:"created_at"`
}

type TotalsDB struct {
	Income   int64 `db:"income"`
	Expenses int64 `db:"expenses"`
	Assets   int64 `db:"assets"`
}

func (r *transactionRepository) Insert(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()

	queryToUse, argsKV, err := insertArgs(tx)
	if err != nil {
		return err
	}
	argsKV["created_at"] = now
	argsKV["updated_at"] = now

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       tx.Kind(),
			"error":      err.Error(),
		}).Error("Insert named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       tx.Kind(),
			"error":      err.Error(),
		}).Error("Database error when inserting transaction")
		return err
	}

	return nil
}

// insertArgs picks the table query for tx. Dates are bound as YYYY-MM-DD so
// the DATE column does not depend on the session time zone.
func insertArgs(tx entity.Transaction) (string, map[string]interface{}, error) {
	var (
		queryToUse string
		argsKV     map[string]interface{}
	)

	switch t := tx.(type) {
	case *entity.Expense:
		queryToUse = queryInsertExpense
		argsKV = map[string]interface{}{
			"id":          t.ID,
			"user_id":     t.UserID,
			"amount":      t.Amount,
			"description": t.Description,
			"category":    string(t.Category),
			"date":        t.Date.Format(entity.DateLayout),
		}
	case *entity.Income:
		queryToUse = queryInsertIncome
		argsKV = map[string]interface{}{
			"id":          t.ID,
			"user_id":     t.UserID,
			"amount":      t.Amount,
			"description": t.Description,
			"category":    string(t.Category),
			"date":        t.Date.Format(entity.DateLayout),
		}
	case *entity.Asset:
		queryToUse = queryInsertAsset
		argsKV = map[string]interface{}{
			"id":             t.ID,
			"user_id":        t.UserID,
			"name":           t.Name,
			"description":    t.Description,
			"purchase_price": t.PurchasePrice,
			"current_value":  t.CurrentValue,
			"date":           t.Date.Format(entity.DateLayout),
		}
	default:
		return "", nil, transaction.ErrInvalidTransactionType
	}

	return queryToUse, argsKV, nil
}

func (r *transactionRepository) ListAll(c context.Context, userID string) ([]entity.Transaction, error) {
	return r.list(c, queryListTransactions, map[string]interface{}{
		"user_id": userID,
	})
}

func (r *transactionRepository) ListRecent(c context.Context, userID string, limit int) ([]entity.Transaction, error) {
	return r.list(c, queryListRecentTransactions, map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	})
}

func (r *transactionRepository) list(c context.Context, queryToUse string, argsKV map[string]interface{}) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionRowDB

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List execution err")
		return nil, err
	}

	userID, _ := argsKV["user_id"].(string)
	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		tx := r.makeTransaction(userID, row)
		if tx == nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         row.ID.String,
				"type":       row.Type.String,
			}).Warn("Skipping row with unknown transaction type")
			continue
		}
		result = append(result, tx)
	}

	return result, nil
}

func (r *transactionRepository) Totals(c context.Context, userID string) (entity.Totals, error) {
	requestID := contextPkg.GetRequestID(c)
	var totals TotalsDB

	query, args, err := sqlx.Named(queryTotals, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Totals named query preparation err")
		return entity.Totals{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&totals); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Totals execution err")
		return entity.Totals{}, err
	}

	return entity.Totals{
		Income:   totals.Income,
		Expenses: totals.Expenses,
		Assets:   totals.Assets,
		NetWorth: totals.Income - totals.Expenses + totals.Assets,
	}, nil
}

func (r *transactionRepository) Update(
	c context.Context,
	userID string,
	id string,
	txType entity.TransactionType,
	amount int64,
	description string,
	category string,
) error {
	requestID := contextPkg.GetRequestID(c)

	var queryToUse string
	switch txType {
	case entity.TransactionTypeExpense:
		queryToUse = queryUpdateExpense
	case entity.TransactionTypeIncome:
		queryToUse = queryUpdateIncome
	case entity.TransactionTypeAsset:
		queryToUse = queryUpdateAsset
	default:
		return transaction.ErrInvalidTransactionType
	}

	argsKV := map[string]interface{}{
		"id":          id,
		"user_id":     userID,
		"amount":      amount,
		"description": sql.NullString{String: description, Valid: description != ""},
		"category":    category,
		"updated_at":  time.Now(),
	}

	affected, err := r.exec(c, queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       txType,
			"error":      err.Error(),
		}).Error("Update execution err")
		return err
	}

	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Update no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

// Delete removes the row from whichever table holds it, trying expenses,
// income and assets in that order.
func (r *transactionRepository) Delete(c context.Context, userID string, id string) (entity.TransactionType, error) {
	requestID := contextPkg.GetRequestID(c)

	targets := []struct {
		txType entity.TransactionType
		query  string
	}{
		{entity.TransactionTypeExpense, queryDeleteExpense},
		{entity.TransactionTypeIncome, queryDeleteIncome},
		{entity.TransactionTypeAsset, queryDeleteAsset},
	}

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	for _, target := range targets {
		affected, err := r.exec(c, target.query, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"type":       target.txType,
				"error":      err.Error(),
			}).Error("Delete execution err")
			return "", err
		}
		if affected > 0 {
			return target.txType, nil
		}
	}

	r.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Warn("Delete no rows affected")

	return "", transaction.ErrTransactionNotFound
}

func (r *transactionRepository) BulkDelete(c context.Context, userID string, ids []string) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"ids":     pq.Array(ids),
		"user_id": userID,
	}

	var total int64
	for _, queryToUse := range []string{queryBulkDeleteExpenses, queryBulkDeleteIncome, queryBulkDeleteAssets} {
		affected, err := r.exec(c, queryToUse, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("BulkDelete execution err")
			return total, err
		}
		total += affected
	}

	return total, nil
}

func (r *transactionRepository) exec(c context.Context, queryToUse string, argsKV map[string]interface{}) (int64, error) {
	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *transactionRepository) makeTransaction(userID string, row TransactionRowDB) entity.Transaction {
	date := entity.CivilDate(row.Date, nil)

	switch entity.TransactionType(row.Type.String) {
	case entity.TransactionTypeExpense:
		return &entity.Expense{
			ID:          row.ID.String,
			UserID:      userID,
			Amount:      row.Amount.Int64,
			Category:    entity.ExpenseCategory(row.Category.String),
			Description: row.Description.String,
			Date:        date,
			CreatedAt:   row.CreatedAt,
		}
	case entity.TransactionTypeIncome:
		return &entity.Income{
			ID:          row.ID.String,
			UserID:      userID,
			Amount:      row.Amount.Int64,
			Category:    entity.IncomeCategory(row.Category.String),
			Description: row.Description.String,
			Date:        date,
			CreatedAt:   row.CreatedAt,
		}
	case entity.TransactionTypeAsset:
		return &entity.Asset{
			ID:            row.ID.String,
			UserID:        userID,
			Name:          row.Name.String,
			Description:   row.Description.String,
			PurchasePrice: row.Amount.Int64,
			CurrentValue:  row.CurrentValue.Int64,
			Date:          date,
			CreatedAt:     row.CreatedAt,
		}
	default:
		return nil
	}
}
