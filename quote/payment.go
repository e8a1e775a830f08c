/*
payment.go - Escrow totals and amortized monthly payment

PURPOSE:
  The monthly-payment half of the engine: escrow sums, the standard
  amortization formula, and the savings comparison against the existing
  payments.

AMORTIZATION:
  payment = P * r * (1+r)^n / ((1+r)^n - 1)
  with r = annualRate/100/12 and n = years*12.

  Missing or non-positive principal, rate or term means no payment can be
  computed; the result is the "" sentinel, never "0" and never NaN.

ESCROW ADD-ON:
  Zero while escrow reserves are not included. Otherwise the monthly
  escrow mode picks tax+insurance, tax only, insurance only, or nothing
  while the mode is still "select". The add-on reads the
  monthlyInsurance/monthlyPropertyTax pair (new-payment dialog), not the
  propertyInsurance/propertyTax pair (escrow-reserves summary).

SAVINGS:
  existing - new, only when both sides are positive and the difference is
  positive. A worse payment is suppressed to "", never shown negative.
*/
package quote

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ESCROW / EXISTING-PAYMENT SUMS
// =============================================================================

// TotalMonthlyEscrow sums the escrow-reserves pair. Folded into the new
// estimated loan amount (shared across columns).
func TotalMonthlyEscrow(in SharedEscrowInputs) decimal.Decimal {
	return ParseWhole(in.PropertyInsurance).Add(ParseWhole(in.PropertyTax))
}

// NewPaymentMonthlyEscrow sums the new-payment dialog pair.
func NewPaymentMonthlyEscrow(in SharedEscrowInputs) decimal.Decimal {
	return ParseWhole(in.MonthlyInsurance).Add(ParseWhole(in.MonthlyPropertyTax))
}

// TotalExistingMonthlyPayments sums the three existing-payment inputs.
func TotalExistingMonthlyPayments(in ExistingPaymentInputs) decimal.Decimal {
	return ParseWhole(in.ExistingMortgagePayment).
		Add(ParseWhole(in.MonthlyPaymentDebtsPayOff)).
		Add(ParseWhole(in.MonthlyPaymentOtherDebts))
}

// EscrowAddOn returns the monthly escrow folded into the payment, per the
// reserves and monthly-escrow modes.
func EscrowAddOn(s Session) decimal.Decimal {
	if s.EscrowReserves == EscrowNotIncluded {
		return decimal.Zero
	}
	switch s.MonthlyEscrow {
	case MonthlyEscrowTaxInsurance:
		return NewPaymentMonthlyEscrow(s.Escrow)
	case MonthlyEscrowTaxOnly:
		return ParseWhole(s.Escrow.MonthlyPropertyTax)
	case MonthlyEscrowInsuranceOnly:
		return ParseWhole(s.Escrow.MonthlyInsurance)
	default:
		return decimal.Zero
	}
}

// TermYears resolves the loan term to whole years: the custom override
// when set, otherwise the "{N}-years" term selector. Zero means unset.
func TermYears(s Session) int {
	raw := s.LoanTerm
	if s.IsCustomTerm {
		raw = s.CustomTermYears
	}
	raw = strings.TrimSuffix(raw, "-years")
	n, err := strconv.Atoi(ToNumericString(raw))
	if err != nil {
		return 0
	}
	return n
}

// =============================================================================
// AMORTIZATION
// =============================================================================

var (
	one          = decimal.NewFromInt(1)
	monthsPer100 = decimal.NewFromInt(1200)
)

// MonthlyPayment computes the amortized payment plus escrow add-on,
// rounded to whole dollars, as a canonical integer string. Any missing or
// non-positive input yields the "" sentinel.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, years int, escrowAddOn decimal.Decimal) string {
	if !principal.IsPositive() || !annualRatePct.IsPositive() || years <= 0 {
		return ""
	}

	monthlyRate := annualRatePct.Div(monthsPer100)
	n := int64(years) * 12
	compound := one.Add(monthlyRate).Pow(decimal.NewFromInt(n))

	payment := principal.Mul(monthlyRate).Mul(compound).
		Div(compound.Sub(one))

	return payment.Add(escrowAddOn).Round(0).String()
}

// MonthlySavings compares existing payments to a computed new payment.
// Both sides must be positive and the new payment must actually be lower;
// otherwise the result is the "" sentinel.
func MonthlySavings(totalExisting decimal.Decimal, newPayment string) string {
	if newPayment == "" {
		return ""
	}
	pay := ParseAmount(newPayment)
	if !totalExisting.IsPositive() || !pay.IsPositive() {
		return ""
	}
	diff := totalExisting.Sub(pay)
	if !diff.IsPositive() {
		return ""
	}
	return diff.Round(0).String()
}
