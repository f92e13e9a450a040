package config

import "strings"

// currencySymbols maps ISO codes and common header units to symbols.
var currencySymbols = map[string]string{
	"INR": "₹",
	"RS":  "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
}

// LookupCurrency returns the symbol for a currency code or unit such as
// "INR" or "usd". Unknown codes report ok=false.
func LookupCurrency(code string) (symbol string, ok bool) {
	symbol, ok = currencySymbols[strings.ToUpper(strings.TrimSpace(code))]
	return symbol, ok
}

// ResolveCurrencySymbol picks the symbol to display: an explicit override
// wins, then the data's unit, then fallback.
func ResolveCurrencySymbol(override, unit, fallback string) string {
	if override != "" {
		if sym, ok := LookupCurrency(override); ok {
			return sym
		}
		return override
	}
	if sym, ok := LookupCurrency(unit); ok {
		return sym
	}
	return fallback
}
