package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "small", amount: 500, want: "Rp 500"},
		{name: "thousands", amount: 25000, want: "Rp 25.000"},
		{name: "millions", amount: 1500000, want: "Rp 1.500.000"},
		{name: "negative", amount: -75000, want: "-Rp 75.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupiah(tt.amount))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "8.000.000", FormatNumber(8000000))
}
