// Package money provides fixed-point BHD amounts. The Bahraini dinar has
// three decimal places, so amounts are stored as an integer count of fils
// (1/1000 BHD). Monetary arithmetic never touches binary floats.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const Currency = "BHD"

// filsPerUnit is the number of minor units in one dinar.
const filsPerUnit = 1000

var ErrMalformedAmount = errors.New("malformed money amount")

// Money is an amount of BHD in fils.
type Money int64

func FromFils(fils int64) Money {
	return Money(fils)
}

// FromFloat converts a float amount of dinars, rounding to the nearest fils.
// Only for values that arrive as JSON numbers from the upstream; computed
// amounts stay integral.
func FromFloat(units float64) Money {
	return Money(math.Round(units * filsPerUnit))
}

// Parse reads a decimal dinar amount such as "12.500", "5" or "-0.250".
// Fractional digits beyond the third are rejected.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrMalformedAmount
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 3 {
		return 0, ErrMalformedAmount
	}
	for len(frac) < 3 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	fils, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}

	total := units*filsPerUnit + fils
	if neg {
		total = -total
	}
	return Money(total), nil
}

func (m Money) Fils() int64 {
	return int64(m)
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// String renders the amount with exactly three decimals, e.g. "12.500".
func (m Money) String() string {
	fils := int64(m)
	sign := ""
	if fils < 0 {
		sign = "-"
		fils = -fils
	}
	return fmt.Sprintf("%s%d.%03d", sign, fils/filsPerUnit, fils%filsPerUnit)
}

// MarshalJSON emits a plain JSON number with three decimals so the upstream
// and the mobile app both read it as a numeric amount.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*m = parsed
	case float64:
		*m = FromFloat(v)
	default:
		return ErrMalformedAmount
	}
	return nil
}
