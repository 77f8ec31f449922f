package listing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceUnknown is the sentinel for a missing or unparseable price.
// It compares as infinitely expensive so it never passes a ceiling check.
var PriceUnknown = math.Inf(1)

// priceRegex matches the numeric substring after the currency marker,
// e.g. "R$ 1.234,56" in pt-BR formatting ('.' thousands, ',' decimal)
var priceRegex = regexp.MustCompile(`R\$\s*([\d.,]+)`)

// ParsePrice converts a raw price string into a numeric amount.
// Every failure path returns PriceUnknown instead of an error.
func ParsePrice(text string) float64 {
	match := priceRegex.FindStringSubmatch(text)
	if match == nil {
		return PriceUnknown
	}

	normalized := strings.ReplaceAll(match[1], ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return PriceUnknown
	}
	return value
}

// IsPriceKnown reports whether value is a real parsed amount
func IsPriceKnown(value float64) bool {
	return !math.IsInf(value, 1)
}
