package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		token string
		want  int64
	}{
		{token: "25rb", want: 25000},
		{token: "25 ribu", want: 25000},
		{token: "1.5jt", want: 1500000},
		{token: "2,5jt", want: 2500000},
		{token: "8 juta", want: 8000000},
		{token: "100k", want: 100000},
		{token: "100K", want: 100000},
		{token: "Rp 25.000", want: 25000},
		{token: "rp.1.500.000", want: 1500000},
		{token: "1.500.000", want: 1500000},
		{token: "15000", want: 15000},
		{token: "16.25", want: 16},
		{token: "16,5", want: 17},
		{token: "25.000,50", want: 25001},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := NormalizeAmount(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAmountRejects(t *testing.T) {
	for _, token := range []string{"abc", "", "rb", "jt 5", "1,5,0", "99999999999999999999jt"} {
		t.Run(token, func(t *testing.T) {
			_, err := NormalizeAmount(token)
			assert.ErrorIs(t, err, ErrUnparseableAmount)
		})
	}
}

func TestFindAmount(t *testing.T) {
	amount, token, ok := FindAmount("beli laptop 8jt kemarin")
	require.True(t, ok)
	assert.Equal(t, int64(8000000), amount)
	assert.Equal(t, "8jt", token)

	_, _, ok = FindAmount("beli laptop")
	assert.False(t, ok)
}

func TestHasMoneyAmount(t *testing.T) {
	assert.True(t, HasMoneyAmount("makan 25rb"))
	assert.True(t, HasMoneyAmount("bayar Rp 50000"))
	assert.True(t, HasMoneyAmount("transfer 1.500.000"))
	assert.False(t, HasMoneyAmount("pengeluaran bulan oktober 2026"))
	assert.False(t, HasMoneyAmount("pengeluaran 1-15 oktober 2026"))
	assert.False(t, HasMoneyAmount("pemasukan tahun 2025"))

	assert.True(t, HasMoneyAmount("gaji kemarin 5000000"))
	assert.True(t, HasMoneyAmount("belanja hari ini 150000"))
	assert.True(t, HasMoneyAmount("parkir 5000 hari ini"))
}

func TestIsNumericOnly(t *testing.T) {
	assert.True(t, IsNumericOnly("15"))
	assert.True(t, IsNumericOnly(" 1.500.000 "))
	assert.False(t, IsNumericOnly("15rb"))
	assert.False(t, IsNumericOnly("   "))
}
