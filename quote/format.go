/*
format.go - Numeric-string canonicalization and display formatting

PURPOSE:
  Every monetary and rate quantity in a quote session is carried as a
  canonical numeric string: ASCII digits only, plus at most one decimal
  point where cents or fractional rates matter. No thousands separators,
  no currency symbols. Display formatting (commas, "$", "%") is a pure
  presentation transform applied at render time, never stored.

SENTINEL:
  The empty string means "not entered / not computable". It is distinct
  from "0": a field the user has not touched must never silently become
  a numeric zero.

CANONICALIZERS:
  ToNumericString:        keep digits only (whole-dollar fields)
  ToDecimalNumericString: keep digits plus the FIRST decimal point

FORMATTERS:
  FormatThousands:        "123456"   -> "123,456"   ("" stays "")
  FormatDecimalThousands: "1234.5"   -> "1,234.5"
  FormatMoney2:           decimal    -> "2,150.00"
  FormatWhole:            decimal    -> "206,300"

SEE ALSO:
  - payment.go: amortization math consuming ParseAmount
  - derive.go: orchestrator writing canonical derived values
*/
package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CANONICALIZATION
// =============================================================================

// ToNumericString strips every character except ASCII digits.
// "$1,234.56abc" -> "123456". Empty input stays empty.
func ToNumericString(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToDecimalNumericString strips every character except ASCII digits and the
// first decimal point. Subsequent dots are dropped: "1.2.3" -> "1.23".
func ToDecimalNumericString(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// DISPLAY FORMATTING
// =============================================================================

// FormatThousands inserts "," every three digits from the right.
// Empty input stays empty, never "0".
func FormatThousands(digits string) string {
	if digits == "" {
		return ""
	}
	n := len(digits)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDecimalThousands applies FormatThousands to the integer part only,
// leaving the fractional part untouched.
func FormatDecimalThousands(value string) string {
	if value == "" {
		return ""
	}
	intPart, fracPart, hasDot := strings.Cut(value, ".")
	if !hasDot {
		return FormatThousands(intPart)
	}
	return FormatThousands(intPart) + "." + fracPart
}

// FormatMoney2 renders a decimal with thousands separators and exactly two
// decimal places: 2150 -> "2,150.00".
func FormatMoney2(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	out := FormatDecimalThousands(s)
	if neg {
		return "-" + out
	}
	return out
}

// FormatWhole renders a decimal rounded to whole dollars with thousands
// separators: 206300 -> "206,300".
func FormatWhole(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	out := FormatThousands(s)
	if neg {
		return "-" + out
	}
	return out
}

// =============================================================================
// PARSING
// =============================================================================

// ParseAmount converts any user- or display-formatted numeric string to a
// decimal. Blank and unparseable inputs become zero: aggregation treats a
// missing addend as 0, and callers that must distinguish "missing" from
// zero check for the empty string before parsing.
func ParseAmount(s string) decimal.Decimal {
	canon := ToDecimalNumericString(s)
	canon = strings.TrimSuffix(canon, ".")
	if canon == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(canon)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseWhole converts a digit-stripped field to an integer-valued decimal.
// Used for fields captured with live digit-stripping (whole dollars only).
func ParseWhole(s string) decimal.Decimal {
	digits := ToNumericString(s)
	if digits == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return d
}
