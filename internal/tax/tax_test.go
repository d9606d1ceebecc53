package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestVATAmountAndTotal(t *testing.T) {
	cases := []struct {
		name      string
		base      string
		rate      string
		wantVAT   string
		wantTotal string
	}{
		{"standard rate", "1000", "23", "230", "1230"},
		{"reduced rate", "200", "10", "20", "220"},
		{"zero rate", "500", "0", "0", "500"},
		{"zero base", "0", "21", "0", "0"},
		{"fractional base", "99.99", "21", "20.9979", "120.9879"},
		{"fractional rate", "1000", "10.5", "105", "1105"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, err := decimal.NewFromString(tc.base)
			if err != nil {
				t.Fatalf("parse base: %v", err)
			}
			rate, err := decimal.NewFromString(tc.rate)
			if err != nil {
				t.Fatalf("parse rate: %v", err)
			}

			vat := VATAmount(base, rate)
			if want, _ := decimal.NewFromString(tc.wantVAT); !vat.Equal(want) {
				t.Errorf("VATAmount(%s, %s) = %s, want %s", tc.base, tc.rate, vat, want)
			}

			total := Total(base, rate)
			if want, _ := decimal.NewFromString(tc.wantTotal); !total.Equal(want) {
				t.Errorf("Total(%s, %s) = %s, want %s", tc.base, tc.rate, total, want)
			}
		})
	}
}

func TestTotalEqualsBasePlusVAT(t *testing.T) {
	base := decimal.NewFromFloat(1234.56)
	rate := decimal.NewFromInt(21)

	if got, want := Total(base, rate), base.Add(VATAmount(base, rate)); !got.Equal(want) {
		t.Fatalf("Total = %s, want base+VAT = %s", got, want)
	}
}
