package nlp

import "Fintar/internal/entity"

// GuessExpenseCategory picks the first expense category whose keywords occur
// in text, or other.
func (v *Vocabulary) GuessExpenseCategory(text string) entity.ExpenseCategory {
	if category, ok := v.matchCategory(text, v.ExpenseCategories); ok && entity.IsValidExpenseCategory(category) {
		return entity.ExpenseCategory(category)
	}
	return entity.ExpenseCategoryOther
}

func (v *Vocabulary) GuessIncomeCategory(text string) entity.IncomeCategory {
	if category, ok := v.matchCategory(text, v.IncomeCategories); ok && entity.IsValidIncomeCategory(category) {
		return entity.IncomeCategory(category)
	}
	return entity.IncomeCategoryOther
}

func (v *Vocabulary) matchCategory(text string, categories []CategoryKeywords) (string, bool) {
	for _, c := range categories {
		if ContainsAny(text, c.Keywords) {
			return c.Category, true
		}
	}
	return "", false
}

// QueryTypes returns the transaction types a question asks about, in
// expense, income, asset order.
func (v *Vocabulary) QueryTypes(text string) []entity.TransactionType {
	var types []entity.TransactionType
	if ContainsAny(text, v.ExpenseQueryWords) {
		types = append(types, entity.TransactionTypeExpense)
	}
	if ContainsAny(text, v.IncomeQueryWords) {
		types = append(types, entity.TransactionTypeIncome)
	}
	if ContainsAny(text, v.AssetQueryWords) {
		types = append(types, entity.TransactionTypeAsset)
	}
	return types
}

// IsAssetQuestion reports whether text asks what an asset is: the word
// itself together with an interrogative.
func (v *Vocabulary) IsAssetQuestion(text string) bool {
	return ContainsAny(text, v.AssetFAQWords) && ContainsAny(text, v.Interrogatives)
}
