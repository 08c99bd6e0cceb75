package storefront

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency Currency
		want     string
	}{
		{name: "usd", amount: 1399, currency: CurrencyUSD, want: "$1399"},
		{name: "eur falls back to dollar display", amount: 599, currency: CurrencyEUR, want: "$599"},
		{name: "egp converts at demo rate", amount: 100, currency: CurrencyEGP, want: "5000 EGP"},
		{name: "fractional", amount: 49.5, currency: CurrencyUSD, want: "$49.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatPrice(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
