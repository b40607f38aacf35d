package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{450, "₹450"},
		{3500, "₹3,500"},
		{99.5, "₹99.5"},
		{125000, "₹1,25,000"},
		{1200, "₹1,200"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount))
	}
}

func TestFormatWholeAmountHasNoDecimals(t *testing.T) {
	assert.NotContains(t, Format(750), ".")
}
