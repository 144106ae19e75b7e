package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/pocketbook/internal/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "1000", want: 1000},
		{in: "12.5", want: 12.5},
		{in: "12,50", want: 12.5},
		{in: "1.234,56", want: 1234.56},
		{in: " 400 ", want: 400},
		{in: "1,000", want: 1000},
		{in: "1,234,567", want: 1234567},
		{in: "1,234.50", want: 1234.5},
		{in: "1.234.567", want: 1234567},
		{in: "1234,567", want: 1234.567},
		{in: "0,125", want: 0.125},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseSigned_Negative(t *testing.T) {
	got, err := money.ParseSigned("-588,74")
	assert.NoError(t, err)
	assert.InDelta(t, -588.74, got, 1e-9)

	got, err = money.ParseSigned("-1,500")
	assert.NoError(t, err)
	assert.InDelta(t, -1500.0, got, 1e-9)
}
