package nlp

import (
	"testing"

	"Fintar/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestGuessExpenseCategory(t *testing.T) {
	vocab := Indonesian()

	tests := map[string]entity.ExpenseCategory{
		"isi bensin motor": entity.ExpenseCategoryTransport,
		"ganti oli":        entity.ExpenseCategoryTransport,
		"makan siang":      entity.ExpenseCategoryFood,
		"token listrik":    entity.ExpenseCategoryBills,
		"beli obat batuk":  entity.ExpenseCategoryHealth,
		"nonton bioskop":   entity.ExpenseCategoryEntertainment,
		"beli sepatu baru": entity.ExpenseCategoryShopping,
		"bayar kursus":     entity.ExpenseCategoryEducation,
		"sumbangan masjid": entity.ExpenseCategoryOther,
	}

	for text, want := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, vocab.GuessExpenseCategory(text))
		})
	}
}

func TestGuessIncomeCategory(t *testing.T) {
	vocab := Indonesian()

	assert.Equal(t, entity.IncomeCategorySalary, vocab.GuessIncomeCategory("gajian bulan ini"))
	assert.Equal(t, entity.IncomeCategoryFreelance, vocab.GuessIncomeCategory("fee proyek desain"))
	assert.Equal(t, entity.IncomeCategoryInvestment, vocab.GuessIncomeCategory("dividen saham"))
	assert.Equal(t, entity.IncomeCategoryOther, vocab.GuessIncomeCategory("dikasih tante"))
}

func TestQueryTypes(t *testing.T) {
	vocab := Indonesian()

	assert.Equal(t, []entity.TransactionType{entity.TransactionTypeExpense},
		vocab.QueryTypes("berapa pengeluaran bulan ini"))
	assert.Equal(t, []entity.TransactionType{entity.TransactionTypeExpense, entity.TransactionTypeIncome},
		vocab.QueryTypes("pemasukan dan pengeluaran minggu ini"))
	assert.Equal(t, []entity.TransactionType{entity.TransactionTypeAsset},
		vocab.QueryTypes("aset tahun ini"))
	assert.Empty(t, vocab.QueryTypes("halo fintar"))
}

func TestIsAssetQuestion(t *testing.T) {
	vocab := Indonesian()

	assert.True(t, vocab.IsAssetQuestion("apa itu aset?"))
	assert.True(t, vocab.IsAssetQuestion("Aset itu apa sih"))
	assert.True(t, vocab.IsAssetQuestion("what is an asset"))
	assert.False(t, vocab.IsAssetQuestion("aset motor 15jt"))
	assert.False(t, vocab.IsAssetQuestion("apa itu reksadana"))
}
