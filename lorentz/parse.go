package lorentz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned by Parse when the text does not hold four numbers.
var ErrMalformed = errors.New("malformed vector text")

// Parse recovers a vector from text produced by String. Every character other
// than digits, '.', 'e', 'E', '+' and '-' is treated as a separator, and the
// remaining tokens must form exactly four numbers.
func Parse(s string) (Vector, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'e', r == 'E', r == '+', r == '-':
			return r
		default:
			return ' '
		}
	}, s)

	fields := strings.Fields(cleaned)
	if len(fields) != 4 {
		return Vector{}, fmt.Errorf("%w: found %d numbers in %q", ErrMalformed, len(fields), s)
	}

	var c [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: component %d: %v", ErrMalformed, i, err)
		}
		c[i] = n
	}
	return New(c[0], c[1], c[2], c[3]), nil
}
