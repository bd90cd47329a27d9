package chatService

import (
	"Fintar/internal/entity"
	"Fintar/pkg/currency"
	"fmt"
	"strings"
)

const (
	msgNoJSON = "Maaf, saya mengalami kesulitan memproses pesan Anda. " +
		"Coba ulangi dengan format yang lebih jelas ya! 😊"
	msgBrokenJSON = "Hmm, sepertinya ada masalah teknis. Bisa coba lagi? " +
		"Atau mungkin tanya sesuatu tentang keuangan? 💡"
	msgNoValidCandidate = "Maaf, saya kesulitan memproses transaksi yang Anda sebutkan. " +
		"Coba dengan format seperti: 'beli makan siang 25rb' atau 'gajian kemarin 5jt' ya! 😊"
	msgUnderstandFailed = "Hmm, saya belum bisa memahami transaksi dari pesan Anda. " +
		"Coba ceritakan seperti: 'beli makan siang 25rb', 'gajian kemarin 5jt', atau tanya tentang tips keuangan! 💰"

	msgAssetExplanation = "Aset adalah barang atau investasi yang nilainya bertahan lama, misalnya laptop, " +
		"motor, rumah, emas, atau saham. Beda dengan pengeluaran yang habis dipakai, aset dicatat dengan harga " +
		"beli dan nilai saat ini sehingga ikut dihitung dalam kekayaan bersihmu.\n\n" +
		"Untuk mencatat aset, ketik misalnya 'beli laptop 8jt' atau 'aset motor 15jt'. 📈"
)

func clarifyNumberMessage(number string) string {
	return fmt.Sprintf("Angka %s ini untuk transaksi apa ya? Tambahkan keterangannya, misalnya "+
		"'makan siang %s' atau 'gajian %s'. 😊", number, number, number)
}

func typeLabel(t entity.TransactionType) string {
	switch t {
	case entity.TransactionTypeIncome:
		return "pemasukan"
	case entity.TransactionTypeAsset:
		return "aset"
	default:
		return "pengeluaran"
	}
}

// confirmationFor describes what was stored. A single transaction, or an
// asset with its paired expense, gets a full sentence. Larger batches get a
// list.
func confirmationFor(transactions []entity.Transaction) string {
	switch {
	case len(transactions) == 0:
		return msgNoValidCandidate
	case len(transactions) == 1:
		return describe(transactions[0])
	case len(transactions) == 2 && isAssetWithPairedExpense(transactions[0], transactions[1]):
		expense := transactions[1].(*entity.Expense)
		return fmt.Sprintf("%s Pengeluaran '%s' sebesar %s juga dicatat untuk arus kas.",
			describe(transactions[0]), expense.Description, currency.FormatRupiah(expense.Amount))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Berhasil mencatat %d transaksi:", len(transactions))
	for _, tx := range transactions {
		sb.WriteString("\n- ")
		sb.WriteString(line(tx))
	}
	return sb.String()
}

func describe(tx entity.Transaction) string {
	switch t := tx.(type) {
	case *entity.Asset:
		return fmt.Sprintf("Berhasil mencatat aset '%s' senilai %s yang dibeli pada %s. "+
			"Bagus! Investasi adalah kunci kekayaan jangka panjang. 📈",
			t.Name, currency.FormatRupiah(t.CurrentValue), t.Date.Format(entity.DateLayout))
	case *entity.Income:
		return fmt.Sprintf("Berhasil mencatat pemasukan sebesar %s untuk '%s' di kategori %s. Mantap! 💪",
			currency.FormatRupiah(t.Amount), t.Description, t.Category)
	case *entity.Expense:
		return fmt.Sprintf("Berhasil mencatat pengeluaran sebesar %s untuk '%s' di kategori %s. Tercatat dengan baik! 📝",
			currency.FormatRupiah(t.Amount), t.Description, t.Category)
	default:
		return msgNoValidCandidate
	}
}

func line(tx entity.Transaction) string {
	if a, ok := tx.(*entity.Asset); ok {
		return fmt.Sprintf("aset '%s' %s", a.Name, currency.FormatRupiah(a.CurrentValue))
	}
	return fmt.Sprintf("%s '%s' %s (%s)", typeLabel(tx.Kind()), entity.Description(tx),
		currency.FormatRupiah(tx.Value()), entity.Category(tx))
}

func isAssetWithPairedExpense(first, second entity.Transaction) bool {
	asset, ok := first.(*entity.Asset)
	if !ok {
		return false
	}
	expense, ok := second.(*entity.Expense)
	return ok && expense.Amount == asset.PurchasePrice && strings.HasSuffix(expense.Description, asset.Name)
}
