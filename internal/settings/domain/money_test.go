package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Run("rounds and groups thousands", func(t *testing.T) {
		assert.Equal(t, "£1,235", FormatAmount(CurrencyGBP, 1234.56))
		assert.Equal(t, "$1,235", FormatAmount(CurrencyUSD, 1234.56))
		assert.Equal(t, "¥1,000,000", FormatAmount(CurrencyJPY, 1000000))
	})

	t.Run("no decimals are ever rendered", func(t *testing.T) {
		assert.Equal(t, "€0", FormatAmount(CurrencyEUR, 0.4))
		assert.Equal(t, "C$1", FormatAmount(CurrencyCAD, 0.5))
	})

	t.Run("unknown currency falls back to the default symbol", func(t *testing.T) {
		assert.Equal(t, "£50", FormatAmount(Currency("XXX"), 50))
	})
}

func TestCurrencyValid(t *testing.T) {
	for _, c := range Currencies {
		assert.True(t, c.Valid())
	}
	assert.False(t, Currency("BTC").Valid())
	assert.Equal(t, "A$", CurrencyAUD.Symbol())
}
