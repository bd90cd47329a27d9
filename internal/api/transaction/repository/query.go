package transactionRepository

const (
	queryInsertExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			amount,
			description,
			category,
			expense_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:description,
			:category,
			:date,
			:created_at,
			:updated_at
		)
	`

	queryInsertIncome = `
		INSERT INTO income (
			id,
			user_id,
			amount,
			description,
			category,
			income_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:description,
			:category,
			:date,
			:created_at,
			:updated_at
		)
	`

	queryInsertAsset = `
		INSERT INTO assets (
			id,
			user_id,
			name,
			description,
			purchase_price,
			current_value,
			purchase_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:description,
			:purchase_price,
			:current_value,
			:date,
			:created_at,
			:updated_at
		)
	`

	queryListTransactions = `
		SELECT id, 'expense' AS type, amount, 0 AS current_value, description, category, '' AS name, expense_date AS date, created_at
		FROM expenses
		WHERE user_id = :user_id
		UNION ALL
		SELECT id, 'income' AS type, amount, 0 AS current_value, description, category, '' AS name, income_date AS date, created_at
		FROM income
		WHERE user_id = :user_id
		UNION ALL
		SELECT id, 'asset' AS type, purchase_price AS amount, current_value, description, '' AS category, name, purchase_date AS date, created_at
		FROM assets
		WHERE user_id = :user_id
		ORDER BY date DESC, created_at DESC
	`

	queryListRecentTransactions = queryListTransactions + `
		LIMIT :limit
	`

	queryTotals = `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM income WHERE user_id = :user_id) AS income,
			(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = :user_id) AS expenses,
			(SELECT COALESCE(SUM(current_value), 0) FROM assets WHERE user_id = :user_id) AS assets
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			amount = :amount,
			description = :description,
			category = :category,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryUpdateIncome = `
		UPDATE income
		SET
			amount = :amount,
			description = :description,
			category = :category,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryUpdateAsset = `
		UPDATE assets
		SET
			current_value = :amount,
			description = :description,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteIncome = `
		DELETE FROM income
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteAsset = `
		DELETE FROM assets
		WHERE id = :id AND user_id = :user_id
	`

	queryBulkDeleteExpenses = `
		DELETE FROM expenses
		WHERE id = ANY(:ids) AND user_id = :user_id
	`

	queryBulkDeleteIncome = `
		DELETE FROM income
		WHERE id = ANY(:ids) AND user_id = :user_id
	`

	queryBulkDeleteAssets = `
		DELETE FROM assets
		WHERE id = ANY(:ids) AND user_id = :user_id
	`
)
