package nlp

import "time"

// CategoryKeywords maps one category to the words that suggest it. Lists are
// evaluated in order and the first category with a matching keyword wins.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Vocabulary is the single lookup table behind every phrase heuristic in this
// package. Swapping it changes the locale without touching control flow.
type Vocabulary struct {
	AssetWords        []string
	ForceAssetPhrases []string
	DurableGoods      []string
	Consumables       []string

	AutoExpenseOff []string
	AutoExpenseOn  []string

	AssetFAQWords  []string
	Interrogatives []string

	ExpenseQueryWords []string
	IncomeQueryWords  []string
	AssetQueryWords   []string

	Months     map[string]time.Month
	MonthNames [12]string

	Today     []string
	Yesterday []string
	ThisWeek  []string
	LastWeek  []string
	ThisMonth []string
	LastMonth []string
	ThisYear  []string
	LastYear  []string

	MonthPrefixes []string
	YearPrefixes  []string
	RangeFrom     []string
	RangeTo       []string

	ExpenseCategories []CategoryKeywords
	IncomeCategories  []CategoryKeywords
}

func Indonesian() *Vocabulary {
	return &Vocabulary{
		AssetWords:        []string{"aset", "asset", "investasi", "modal", "inventaris"},
		ForceAssetPhrases: []string{"ini aset", "sebagai aset", "catat sebagai aset"},
		DurableGoods: []string{
			"laptop", "komputer", "pc", "macbook", "hp", "handphone", "smartphone", "iphone", "tablet", "ipad",
			"motor", "mobil", "sepeda", "rumah", "apartemen", "tanah", "ruko", "mesin", "kulkas", "tv", "televisi",
			"kamera", "ac", "emas", "logam mulia", "printer", "monitor", "lemari", "sofa", "mesin cuci",
		},
		Consumables: []string{
			"makan", "makanan", "minum", "minuman", "kopi", "jajan", "snack", "sarapan", "nasi", "lauk",
			"bensin", "bbm", "pertalite", "pertamax", "solar", "isi bensin", "oli", "ganti oli",
			"tol", "parkir", "ojek", "ojol", "grab", "gojek",
			"listrik", "token listrik", "pulsa", "kuota", "internet", "pdam", "air", "gas", "lpg",
			"beras", "sembako", "gula", "minyak goreng", "telur", "sayur", "buah", "groceries",
		},

		AutoExpenseOff: []string{"tanpa pengeluaran", "jangan catat pengeluaran", "bukan pengeluaran", "tanpa expense"},
		AutoExpenseOn:  []string{"catat juga pengeluaran", "dengan pengeluaran", "sekalian pengeluaran", "plus pengeluaran"},

		AssetFAQWords: []string{"aset", "asset", "aktiva"},
		Interrogatives: []string{
			"apa itu", "itu apa", "apa sih", "apakah", "apa yang dimaksud", "maksud", "maksudnya",
			"arti", "artinya", "pengertian", "jelaskan", "definisi", "what is", "what are",
		},

		ExpenseQueryWords: []string{"pengeluaran", "expense", "expenses", "spending", "belanja", "keluar", "pengeluaranku"},
		IncomeQueryWords:  []string{"pemasukan", "pendapatan", "penghasilan", "gaji", "income", "masuk", "pemasukanku"},
		AssetQueryWords:   []string{"aset", "asset", "assets", "investasi"},

		Months: map[string]time.Month{
			"januari": time.January, "jan": time.January, "january": time.January,
			"februari": time.February, "feb": time.February, "pebruari": time.February, "february": time.February,
			"maret": time.March, "mar": time.March, "march": time.March,
			"april": time.April, "apr": time.April,
			"mei": time.May, "may": time.May,
			"juni": time.June, "jun": time.June, "june": time.June,
			"juli": time.July, "jul": time.July, "july": time.July,
			"agustus": time.August, "agu": time.August, "agt": time.August, "aug": time.August, "august": time.August,
			"september": time.September, "sep": time.September, "sept": time.September,
			"oktober": time.October, "okt": time.October, "oct": time.October, "october": time.October,
			"november": time.November, "nov": time.November, "nopember": time.November,
			"desember": time.December, "des": time.December, "dec": time.December, "december": time.December,
		},
		MonthNames: [12]string{
			"Januari", "Februari", "Maret", "April", "Mei", "Juni",
			"Juli", "Agustus", "September", "Oktober", "November", "Desember",
		},

		Today:     []string{"hari ini", "today"},
		Yesterday: []string{"kemarin", "kemaren", "yesterday"},
		ThisWeek:  []string{"minggu ini", "pekan ini", "this week"},
		LastWeek:  []string{"minggu lalu", "pekan lalu", "minggu kemarin", "last week"},
		ThisMonth: []string{"bulan ini", "this month"},
		LastMonth: []string{"bulan lalu", "bulan kemarin", "last month"},
		ThisYear:  []string{"tahun ini", "this year"},
		LastYear:  []string{"tahun lalu", "tahun kemarin", "last year"},

		MonthPrefixes: []string{"bulan"},
		YearPrefixes:  []string{"tahun"},
		RangeFrom:     []string{"dari", "from"},
		RangeTo:       []string{"sampai", "hingga", "sd", "to", "until"},

		ExpenseCategories: []CategoryKeywords{
			{Category: "transport", Keywords: []string{
				"bensin", "bbm", "pertalite", "pertamax", "solar", "oli", "servis motor", "servis mobil",
				"ojek", "ojol", "grab", "gojek", "taksi", "taxi", "parkir", "tol", "kereta", "krl", "mrt",
				"busway", "bus", "angkot", "tiket pesawat", "transport",
			}},
			{Category: "food", Keywords: []string{
				"makan", "makanan", "minum", "minuman", "kopi", "jajan", "snack", "sarapan", "resto",
				"restoran", "warung", "nasi", "bakso", "sate", "martabak", "food",
			}},
			{Category: "bills", Keywords: []string{
				"listrik", "pln", "pdam", "air", "pulsa", "kuota", "internet", "wifi", "token", "tagihan",
				"cicilan", "sewa", "kos", "kontrakan", "bpjs", "asuransi", "gas", "lpg",
			}},
			{Category: "health", Keywords: []string{
				"obat", "dokter", "apotek", "rumah sakit", "klinik", "vitamin", "periksa", "gigi",
			}},
			{Category: "education", Keywords: []string{
				"sekolah", "kuliah", "buku", "kursus", "les", "spp", "seminar", "pelatihan", "ukt",
			}},
			{Category: "entertainment", Keywords: []string{
				"nonton", "film", "bioskop", "game", "konser", "netflix", "spotify", "liburan", "karaoke",
				"hiburan", "wisata",
			}},
			{Category: "shopping", Keywords: []string{
				"belanja", "baju", "celana", "sepatu", "tas", "shopee", "tokopedia", "skincare", "sabun",
				"beras", "sembako", "groceries",
			}},
		},
		IncomeCategories: []CategoryKeywords{
			{Category: "salary", Keywords: []string{"gaji", "gajian", "salary", "upah", "thr", "bonus"}},
			{Category: "freelance", Keywords: []string{
				"freelance", "proyek", "project", "sampingan", "fee", "honor", "komisi",
			}},
			{Category: "business", Keywords: []string{
				"jualan", "dagang", "usaha", "bisnis", "omzet", "penjualan", "toko",
			}},
			{Category: "investment", Keywords: []string{
				"dividen", "saham", "bunga", "reksadana", "kupon", "investasi", "return",
			}},
		},
	}
}

// MonthName returns the display name of m in this vocabulary.
func (v *Vocabulary) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return v.MonthNames[m-1]
}
