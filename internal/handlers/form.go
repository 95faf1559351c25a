package handlers

import (
	"fmt"
	"math"
	"strings"
)

// parseRating reads a leading decimal integer the way browsers' parseInt does:
// leading whitespace and one sign are skipped, digits are consumed up to the
// first non-digit, and anything without a digit is invalid (nil). Values that
// overflow int are also invalid.
func parseRating(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if n > (math.MaxInt-9)/10 {
			return nil
		}
		n = n*10 + int(s[digits]-'0')
	}
	if digits == 0 {
		return nil
	}
	if neg {
		n = -n
	}
	return &n
}

// RatingPolicy decides whether out-of-range ratings are rejected.
type RatingPolicy struct {
	Strict bool
	Min    int
	Max    int
}

func (p RatingPolicy) check(field string, rating *int) error {
	if !p.Strict {
		return nil
	}
	if rating == nil {
		return fmt.Errorf("%s: a rating is required", field)
	}
	if *rating < p.Min || *rating > p.Max {
		return fmt.Errorf("%s: rating must be between %d and %d", field, p.Min, p.Max)
	}
	return nil
}
