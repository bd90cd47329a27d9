package chatService

import (
	"Fintar/internal/entity"
	"Fintar/pkg/currency"
	"fmt"
	"sort"
	"strings"
)

const topCategoryLimit = 3

type categoryTotal struct {
	category string
	amount   int64
}

type typeSummary struct {
	txType        entity.TransactionType
	total         int64
	count         int
	topCategories []categoryTotal
}

// summarizeRange reports the requested types over the transactions dated
// inside dateRange. It does not look at the clock.
func summarizeRange(
	dateRange entity.DateRange,
	types []entity.TransactionType,
	transactions []entity.Transaction,
	expenseThreshold int64,
) string {
	inRange := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if dateRange.Contains(tx.OccurredOn()) {
			inRange = append(inRange, tx)
		}
	}

	summaries := make(map[entity.TransactionType]typeSummary, len(types))
	for _, t := range types {
		summaries[t] = summarizeType(t, inRange)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ringkasan %s (%s s/d %s):",
		dateRange.Label, dateRange.Start.Format(entity.DateLayout), dateRange.End.Format(entity.DateLayout))

	for _, t := range types {
		sum := summaries[t]
		fmt.Fprintf(&sb, "\n\n%s: %s dari %d transaksi",
			titleLabel(t), currency.FormatRupiah(sum.total), sum.count)
		if len(sum.topCategories) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n%s:", topLabel(t))
		for i, c := range sum.topCategories {
			fmt.Fprintf(&sb, "\n%d. %s: %s", i+1, c.category, currency.FormatRupiah(c.amount))
		}
	}

	sb.WriteString("\n\n💡 ")
	sb.WriteString(advisory(types, summaries, expenseThreshold))

	return sb.String()
}

func summarizeType(t entity.TransactionType, transactions []entity.Transaction) typeSummary {
	sum := typeSummary{txType: t}

	index := make(map[string]int)
	var categories []categoryTotal
	for _, tx := range transactions {
		if tx.Kind() != t {
			continue
		}
		amount := amountOf(tx)
		sum.total += amount
		sum.count++

		category := entity.Category(tx)
		i, seen := index[category]
		if !seen {
			i = len(categories)
			index[category] = i
			categories = append(categories, categoryTotal{category: category})
		}
		categories[i].amount += amount
	}

	// Stable sort keeps first-seen order between equal totals.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].amount > categories[j].amount
	})
	if len(categories) > topCategoryLimit {
		categories = categories[:topCategoryLimit]
	}
	sum.topCategories = categories

	return sum
}

// amountOf is the figure summed in reports, assets counting at their
// current value.
func amountOf(tx entity.Transaction) int64 {
	if a, ok := tx.(*entity.Asset); ok {
		return a.CurrentValue
	}
	return tx.Value()
}

func advisory(types []entity.TransactionType, summaries map[entity.TransactionType]typeSummary, expenseThreshold int64) string {
	expense, hasExpense := summaries[entity.TransactionTypeExpense]
	income, hasIncome := summaries[entity.TransactionTypeIncome]

	empty := true
	for _, t := range types {
		if summaries[t].count > 0 {
			empty = false
			break
		}
	}
	if empty {
		return "Belum ada transaksi yang tercatat pada periode ini. Yuk mulai catat transaksimu!"
	}

	if hasExpense && expense.total > expenseThreshold {
		msg := fmt.Sprintf("Pengeluaran periode ini sudah melewati %s.", currency.FormatRupiah(expenseThreshold))
		if len(expense.topCategories) > 0 {
			msg += fmt.Sprintf(" Coba tinjau kategori %s yang paling besar.", expense.topCategories[0].category)
		}
		return msg
	}

	if hasExpense && hasIncome && expense.total > income.total {
		return fmt.Sprintf("Pengeluaran lebih besar %s dari pemasukan. Pertimbangkan untuk mengurangi pengeluaran yang tidak mendesak.",
			currency.FormatRupiah(expense.total-income.total))
	}

	if hasExpense && hasIncome {
		return fmt.Sprintf("Mantap, kamu masih menyisakan %s dari pemasukan periode ini.",
			currency.FormatRupiah(income.total-expense.total))
	}

	return "Keuanganmu pada periode ini terlihat terkendali. Tetap catat setiap transaksi ya!"
}

func titleLabel(t entity.TransactionType) string {
	switch t {
	case entity.TransactionTypeIncome:
		return "Total pemasukan"
	case entity.TransactionTypeAsset:
		return "Total aset"
	default:
		return "Total pengeluaran"
	}
}

func topLabel(t entity.TransactionType) string {
	if t == entity.TransactionTypeAsset {
		return "Aset terbesar"
	}
	return fmt.Sprintf("Kategori %s teratas", typeLabel(t))
}
