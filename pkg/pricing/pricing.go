package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CoinPackage is one purchasable bundle of coins.
type CoinPackage struct {
	Id       string `json:"id"`
	Coins    int64  `json:"coins"`
	USDCents int64  `json:"usd_cents"`
}

// Packages is the coin package catalog offered at checkout.
var Packages = []CoinPackage{
	{Id: "starter", Coins: 500, USDCents: 499},
	{Id: "basic", Coins: 1100, USDCents: 999},
	{Id: "plus", Coins: 2400, USDCents: 1999},
	{Id: "mega", Coins: 6500, USDCents: 4999},
	{Id: "whale", Coins: 14000, USDCents: 9999},
}

// FindPackage looks up a coin package by its ID.
func FindPackage(id string) (CoinPackage, bool) {
	for _, pkg := range Packages {
		if pkg.Id == id {
			return pkg, true
		}
	}
	return CoinPackage{}, false
}

var centsPerDollar = decimal.NewFromInt(100)

// ParseUSD converts a decimal dollar string ("4.99") to integer cents.
// Amounts with sub-cent precision or a negative sign are rejected.
func ParseUSD(usd string) (int64, error) {
	d, err := decimal.NewFromString(usd)
	if err != nil {
		return 0, fmt.Errorf("invalid USD amount %q: %w", usd, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("USD amount %q is negative", usd)
	}
	cents := d.Mul(centsPerDollar)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("USD amount %q has sub-cent precision", usd)
	}
	return cents.IntPart(), nil
}

// FormatUSD renders integer cents as a decimal dollar string.
func FormatUSD(cents int64) string {
	return decimal.NewFromInt(cents).Div(centsPerDollar).StringFixed(2)
}
