package utils_test

import (
	"testing"

	"github.com/SscSPs/bill_tracker_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "zero", amount: "0", want: "$0.00"},
		{name: "cents", amount: "19.99", want: "$19.99"},
		{name: "grouping", amount: "1234.5", want: "$1,234.50"},
		{name: "rounds half away from zero", amount: "10.005", want: "$10.01"},
		{name: "negative", amount: "-75", want: "-$75.00"},
		{name: "negative rounding to zero", amount: "-0.001", want: "$0.00"},
		{name: "large amount keeps every digit", amount: "123456789012345678.99", want: "$123,456,789,012,345,678.99"},
		{name: "beyond int64", amount: "12345678901234567890123.45", want: "$12,345,678,901,234,567,890,123.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatCurrency(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "12.30", utils.FormatWithPrecision(decimal.RequireFromString("12.3"), 2))
}
