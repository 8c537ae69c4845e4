package types

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol, falling back to the code
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	default:
		return string(c) + " "
	}
}
