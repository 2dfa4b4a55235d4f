package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestKind_Valid(t *testing.T) {
	for _, k := range []Kind{KindDeposit, KindWithdrawal, KindTransfer} {
		assert.True(t, k.Valid(), string(k))
	}
	for _, k := range []Kind{"", "Deposit", "refund", "transfer "} {
		assert.False(t, k.Valid(), string(k))
	}
}

func TestAmountInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"50", true},
		{"-12.50", true},
		{"99999999999999999999", true},
		{"-99999999999999999999", true},
		{"0.000000000000000001", true},
		{"1e19", true},
		{"1e20", false},
		{"100000000000000000000", false},
		{"0.0000000000000000001", false},
		{"1e5000000", false},
		{"1e-5000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.want, AmountInRange(d))
		})
	}
}
