package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_StandardThirtyYear(t *testing.T) {
	// 300,000 at 6% over 30 years: the textbook fixed-rate payment is
	// 1,798.65/month, 1,799 at whole dollars.
	got := MonthlyPayment(decimal.NewFromInt(300000), decimal.NewFromInt(6), 30, decimal.Zero)
	assert.Equal(t, "1799", got)
}

func TestMonthlyPayment_MissingInputSentinel(t *testing.T) {
	p := decimal.NewFromInt(300000)
	r := decimal.NewFromInt(6)

	// Zero principal, rate or term: no payment can be computed. The
	// result is "", never "0" and never NaN.
	assert.Equal(t, "", MonthlyPayment(decimal.Zero, r, 30, decimal.Zero))
	assert.Equal(t, "", MonthlyPayment(p, decimal.Zero, 30, decimal.Zero))
	assert.Equal(t, "", MonthlyPayment(p, r, 0, decimal.Zero))
	assert.Equal(t, "", MonthlyPayment(p.Neg(), r, 30, decimal.Zero))
}

func TestMonthlyPayment_EscrowAddOn(t *testing.T) {
	base := MonthlyPayment(decimal.NewFromInt(300000), decimal.NewFromInt(6), 30, decimal.Zero)
	withEscrow := MonthlyPayment(decimal.NewFromInt(300000), decimal.NewFromInt(6), 30, decimal.NewFromInt(400))
	assert.Equal(t, "1799", base)
	assert.Equal(t, "2199", withEscrow)
}

func TestEscrowAddOn_Modes(t *testing.T) {
	s := NewSession(nil)
	s.Escrow.MonthlyInsurance = "150"
	s.Escrow.MonthlyPropertyTax = "250"

	// Reserves not included: always zero, whatever the monthly mode says.
	s.EscrowReserves = EscrowNotIncluded
	s.MonthlyEscrow = MonthlyEscrowTaxInsurance
	assert.True(t, EscrowAddOn(s).IsZero())

	s.EscrowReserves = EscrowIncluded

	cases := []struct {
		mode MonthlyEscrowMode
		want int64
	}{
		{MonthlyEscrowTaxInsurance, 400},
		{MonthlyEscrowTaxOnly, 250},
		{MonthlyEscrowInsuranceOnly, 150},
		{MonthlyEscrowSelect, 0},
	}
	for _, c := range cases {
		s.MonthlyEscrow = c.mode
		assert.Equal(t, c.want, EscrowAddOn(s).IntPart(), "mode %s", c.mode)
	}
}

func TestEscrowPairsAreIndependent(t *testing.T) {
	// The reserves pair and the new-payment pair are distinct inputs.
	in := SharedEscrowInputs{
		PropertyInsurance:  "100",
		PropertyTax:        "200",
		MonthlyInsurance:   "150",
		MonthlyPropertyTax: "250",
	}
	assert.Equal(t, int64(300), TotalMonthlyEscrow(in).IntPart())
	assert.Equal(t, int64(400), NewPaymentMonthlyEscrow(in).IntPart())
}

func TestTotalExistingMonthlyPayments(t *testing.T) {
	in := ExistingPaymentInputs{
		ExistingMortgagePayment:   "1,500",
		MonthlyPaymentDebtsPayOff: "300",
		MonthlyPaymentOtherDebts:  "",
	}
	assert.Equal(t, int64(1800), TotalExistingMonthlyPayments(in).IntPart())
}

func TestTermYears(t *testing.T) {
	s := NewSession(nil)
	s.LoanTerm = "15-years"
	assert.Equal(t, 15, TermYears(s))

	s.IsCustomTerm = true
	s.CustomTermYears = "22"
	assert.Equal(t, 22, TermYears(s))

	s.CustomTermYears = ""
	assert.Equal(t, 0, TermYears(s))
}

func TestMonthlySavings_Floor(t *testing.T) {
	// A new payment above the existing payments is suppressed, never
	// shown as a negative "savings".
	assert.Equal(t, "", MonthlySavings(decimal.NewFromInt(1000), "1200"))
	assert.Equal(t, "200", MonthlySavings(decimal.NewFromInt(1200), "1000"))
	assert.Equal(t, "", MonthlySavings(decimal.NewFromInt(1200), "1200"))
	assert.Equal(t, "", MonthlySavings(decimal.Zero, "1000"))
	assert.Equal(t, "", MonthlySavings(decimal.NewFromInt(1200), ""))
}
