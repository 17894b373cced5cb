package money_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"7", "RM 7.00"},
		{"13.2", "RM 13.20"},
		{"6.80", "RM 6.80"},
		{"0", "RM 0.00"},
		{"9.999", "RM 10.00"}, // rounds half up to two places
	}

	for _, tc := range cases {
		got := money.Format(decimal.RequireFromString(tc.amount))
		if got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
