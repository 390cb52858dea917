// Package money validates staff-entered currency amounts against
// system-computed values.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is the precision every comparison is made at.
const Cents int32 = 2

var (
	ErrValidation     = errors.New("validation error")
	ErrNotANumber     = errors.New("value is not a positive number")
	ErrAmountMismatch = errors.New("amount does not match expected value")
)

// AmountMismatchError carries both rounded values so the caller can show them.
type AmountMismatchError struct {
	Got      decimal.Decimal
	Expected decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: got %s, expected %s", e.Got.StringFixed(Cents), e.Expected.StringFixed(Cents))
}

func (e *AmountMismatchError) Unwrap() []error {
	return []error{ErrAmountMismatch, ErrValidation}
}

type notANumberError struct {
	input string
}

func (e *notANumberError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotANumber.Error(), e.input)
}

func (e *notANumberError) Unwrap() []error {
	return []error{ErrNotANumber, ErrValidation}
}

// Validate parses input and requires it to equal expected once both are
// rounded half-up to cents. It returns the rounded value.
func Validate(input string, expected float64) (float64, error) {
	got, err := Parse(input)
	if err != nil {
		return 0, err
	}

	want := RoundCents(decimal.NewFromFloat(expected))
	if !got.Equal(want) {
		return 0, &AmountMismatchError{Got: got, Expected: want}
	}

	f, _ := got.Float64()
	return f, nil
}

// Parse reads a positive amount rounded to cents. It accepts "237.5",
// "237,50", "1.237,50" and an optional "R$" prefix.
func Parse(input string) (decimal.Decimal, error) {
	s := normalize(input)
	if s == "" {
		return decimal.Zero, &notANumberError{input: input}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, &notANumberError{input: input}
	}
	return RoundCents(d), nil
}

// RoundCents rounds half away from zero, which is half-up for the positive
// amounts handled here.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(Cents)
}

// Equal compares two float amounts at cent precision.
func Equal(a, b float64) bool {
	return RoundCents(decimal.NewFromFloat(a)).Equal(RoundCents(decimal.NewFromFloat(b)))
}

func normalize(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return ""
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// 1.237,50
		if !groupedThousands(s) {
			return ""
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// groupedThousands accepts "1.237,50": a single decimal comma after the last
// dot, with dot groups of three digits.
func groupedThousands(s string) bool {
	comma := strings.LastIndex(s, ",")
	if strings.Count(s, ",") != 1 || strings.LastIndex(s, ".") > comma {
		return false
	}
	groups := strings.Split(s[:comma], ".")
	for i, g := range groups {
		if g == "" || len(g) > 3 || (i > 0 && len(g) != 3) {
			return false
		}
	}
	return true
}
