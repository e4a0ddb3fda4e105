// Package domain holds the account settings model: display currency and
// the user profile.
package domain

// Currency is an ISO 4217 display currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
)

// DefaultCurrency is used when nothing has been stored yet.
const DefaultCurrency = CurrencyGBP

// Currencies lists the supported codes in display order.
var Currencies = []Currency{
	CurrencyUSD, CurrencyGBP, CurrencyEUR, CurrencyCAD, CurrencyAUD, CurrencyJPY,
}

// Valid reports whether c is a supported code.
func (c Currency) Valid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

var symbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyGBP: "£",
	CurrencyEUR: "€",
	CurrencyCAD: "C$",
	CurrencyAUD: "A$",
	CurrencyJPY: "¥",
}

// Symbol returns the currency's display prefix, falling back to the
// default currency's symbol for unknown codes.
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return symbols[DefaultCurrency]
}

// UserProfile is the single account's display identity. AvatarData holds a
// data-URL-encoded image when the user has uploaded one.
type UserProfile struct {
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	AvatarData string `json:"avatarData,omitempty"`
}

// DefaultProfile is returned until the user saves their own details.
var DefaultProfile = UserProfile{Name: "Megan Smith", Tier: "Pro User"}
