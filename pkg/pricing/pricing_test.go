package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPackage(t *testing.T) {
	t.Run("Known Package", func(t *testing.T) {
		pkg, ok := FindPackage("starter")
		assert.True(t, ok)
		assert.Equal(t, int64(500), pkg.Coins)
		assert.Equal(t, int64(499), pkg.USDCents)
	})

	t.Run("Unknown Package", func(t *testing.T) {
		_, ok := FindPackage("nonexistent")
		assert.False(t, ok)
	})
}

func TestParseUSD(t *testing.T) {
	t.Run("Valid Amounts", func(t *testing.T) {
		cases := map[string]int64{
			"4.99":  499,
			"0":     0,
			"10":    1000,
			"99.90": 9990,
			"0.01":  1,
		}
		for in, want := range cases {
			got, err := ParseUSD(in)
			assert.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("Negative Amount", func(t *testing.T) {
		_, err := ParseUSD("-4.99")
		assert.Error(t, err)
	})

	t.Run("Sub-Cent Precision", func(t *testing.T) {
		_, err := ParseUSD("4.999")
		assert.Error(t, err)
	})

	t.Run("Not A Number", func(t *testing.T) {
		_, err := ParseUSD("four dollars")
		assert.Error(t, err)
	})
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "4.99", FormatUSD(499))
	assert.Equal(t, "0.00", FormatUSD(0))
	assert.Equal(t, "10.00", FormatUSD(1000))
}
