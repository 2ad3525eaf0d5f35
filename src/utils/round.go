package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundCents rounds to two decimal places. All quoted prices and spreads are
// in cents.
func RoundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

// RoundMillis rounds to three decimal places, used for signed grading
// differences.
func RoundMillis(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// ParseOptionalPrice coerces a submitted string into a price. Nil or blank
// input means the side was not attempted.
func ParseOptionalPrice(value *string) (*float64, error) {
	if value == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("ParseOptionalPrice: %q: %v", trimmed, err)
	}

	return &parsed, nil
}
