/*
va.go - VA funding-fee calculator and Calculate/Clear/Apply workflow

PURPOSE:
  The VA funding fee is a tiered percentage of the loan amount, fixed by
  statute per use type. Unlike the rest of the engine this is NOT
  auto-reactive: the four tier amounts are produced only on an explicit
  Calculate action, then applied to rate columns as a bulk broadcast.

TIERS (of the base loan amount):
  First-use cash-out:    2.15%
  Subsequent cash-out:   3.30%
  Rate & term:           0.50%
  IRRRL:                 0.50%

BASE AMOUNT:
  base = newEstLoanAmount - currently applied funding fee. Subtracting the
  fee already embedded in the estimate keeps a recompute from compounding
  the fee onto itself.

MODE STATE:
  idle -> calculated   on Calculate (tier inputs lock while calculated)
  calculated -> idle   on Clear

  Calculate is gated off entirely for VA-exempt and VA-Jumbo-exempt
  borrowers; the state is returned untouched. Clear force-sets the tiers
  and the applied value to "0.00". Apply copies one tier into the
  vaFundingFee of every currently selected column.
*/
package quote

import "github.com/shopspring/decimal"

// =============================================================================
// STATE
// =============================================================================

type VaMode string

const (
	VaIdle       VaMode = "idle"
	VaCalculated VaMode = "calculated"
)

// VaTier identifies which fee tier an Apply action broadcasts.
type VaTier string

const (
	VaTierFirstTimeCashOut  VaTier = "first-time-cash-out"
	VaTierSubsequentCashOut VaTier = "subsequent-cash-out"
	VaTierRateTerm          VaTier = "rate-term"
	VaTierIRRRL             VaTier = "irrrl"
)

// VaFeeTiers holds the four computed amounts, display-formatted with two
// decimal places ("2,150.00").
type VaFeeTiers struct {
	FirstTimeCashOut  string `json:"first_time_cash_out"`
	SubsequentCashOut string `json:"subsequent_cash_out"`
	RateTerm          string `json:"rate_term"`
	IRRRL             string `json:"irrrl"`
}

// VaState is the one piece of explicit mode state in the engine.
type VaState struct {
	Mode    VaMode     `json:"mode"`
	Tiers   VaFeeTiers `json:"tiers"`
	Applied string     `json:"applied"` // last value broadcast to columns
}

var (
	vaRateFirstTimeCashOut  = decimal.NewFromFloat(0.0215)
	vaRateSubsequentCashOut = decimal.NewFromFloat(0.033)
	vaRateRateTerm          = decimal.NewFromFloat(0.005)
	vaRateIRRRL             = decimal.NewFromFloat(0.005)
)

// =============================================================================
// CALCULATOR
// =============================================================================

// CalculateVaFees computes the four tier amounts for a base loan amount,
// rounded to cents.
func CalculateVaFees(base decimal.Decimal) VaFeeTiers {
	fee := func(rate decimal.Decimal) string {
		return FormatMoney2(base.Mul(rate).Round(2))
	}
	return VaFeeTiers{
		FirstTimeCashOut:  fee(vaRateFirstTimeCashOut),
		SubsequentCashOut: fee(vaRateSubsequentCashOut),
		RateTerm:          fee(vaRateRateTerm),
		IRRRL:             fee(vaRateIRRRL),
	}
}

// =============================================================================
// SESSION WORKFLOW
// =============================================================================

// VaCalculate runs the tier calculation against the first selected
// column's estimate. Exempt borrowers pay no funding fee, so the action is
// a no-op for them and the previous state stands.
func VaCalculate(s Session) Session {
	if s.IsVAExempt || s.IsVAJumboExempt {
		return s
	}
	out := s.Clone()

	col := 0
	if len(s.SelectedRateIDs) > 0 {
		col = s.SelectedRateIDs[0]
	}
	if col < 0 || col >= NumColumns {
		col = 0
	}
	base := ParseAmount(s.Columns[col].NewEstLoanAmount).
		Sub(ParseAmount(s.Columns[col].VAFundingFee))

	out.Va.Tiers = CalculateVaFees(base)
	out.Va.Mode = VaCalculated
	return out
}

// VaClear resets the workflow: tiers and the applied value force-set to
// "0.00", mode back to idle so the tier inputs unlock.
func VaClear(s Session) Session {
	out := s.Clone()
	out.Va = VaState{
		Mode: VaIdle,
		Tiers: VaFeeTiers{
			FirstTimeCashOut:  "0.00",
			SubsequentCashOut: "0.00",
			RateTerm:          "0.00",
			IRRRL:             "0.00",
		},
		Applied: "0.00",
	}
	return out
}

// VaApply broadcasts one tier's value into the vaFundingFee slot of every
// selected column. The stored value is canonicalized; display commas never
// land in session state.
func VaApply(s Session, tier VaTier) Session {
	out := s.Clone()

	var value string
	switch tier {
	case VaTierFirstTimeCashOut:
		value = s.Va.Tiers.FirstTimeCashOut
	case VaTierSubsequentCashOut:
		value = s.Va.Tiers.SubsequentCashOut
	case VaTierRateTerm:
		value = s.Va.Tiers.RateTerm
	case VaTierIRRRL:
		value = s.Va.Tiers.IRRRL
	default:
		return s
	}

	canon := ToDecimalNumericString(value)
	for _, i := range s.SelectedRateIDs {
		if i < 0 || i >= NumColumns {
			continue
		}
		out.Columns[i].VAFundingFee = canon
	}
	out.Va.Applied = value
	return out
}
