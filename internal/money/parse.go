package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAmbiguousAmount reports an amount whose only separator is a comma
// followed by exactly three digits ("1,000"), which reads as a thousands
// separator in en-US and a decimal comma in es.
var ErrAmbiguousAmount = errors.New("ambiguous amount: use 1000, 1000.00 or 1.000,00")

// ParseAmount reads an amount typed in either the en-US or the es
// convention. When both separators appear the last one is the decimal
// point ("1,500.50" and "1.500,50" are both 1500.5). A lone comma is a
// decimal comma unless it is followed by exactly three digits.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma < 0:
		// plain or dot-decimal
	case lastDot < 0:
		if strings.Count(s, ",") > 1 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(s)-lastComma-1 == 3 {
			return 0, fmt.Errorf("%w: %q", ErrAmbiguousAmount, s)
		}
		s = strings.Replace(s, ",", ".", 1)
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		if strings.Count(s, ",") > 1 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	return v, nil
}
