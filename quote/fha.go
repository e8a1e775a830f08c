/*
fha.go - FHA MIP (Mortgage Insurance Premium) calculator

PURPOSE:
  Derives the upfront-MIP picture for an FHA refinance: what the prior
  loan's MIP cost, how much of it is still refundable, and what the new
  loan's net MIP comes to after the refund.

FORMULAS:
  priorMipCost        = startingLoanBalance * priorMipCostFactor / 100
  refundValuePercent  = remainingMonths / 36 * 100   (valid only for 1..36)
  estimatedRefund     = priorMipCost * refundValuePercent / 100
  newMipCost          = newLoanAmount * newMipCostFactor / 100
  adjustedNewMip      = max(0, newMipCost - estimatedRefund)

REFUND WINDOW:
  HUD refunds upfront MIP on FHA-to-FHA refinances within 36 months,
  prorated monthly. RemainingMonths outside (0, 36] yields an empty refund
  percentage and therefore an empty refund. The input layer independently
  clamps entries above 36 down to 36 (SetRemainingMonths); the calculator
  still rejects out-of-range values so state injected past the input layer
  stays well-defined.

OUTPUT:
  All money fields are thousands-separated whole-dollar strings; the
  refund percentage carries two decimals. Zero or negative results render
  as the empty string, except AdjustedNewMipEstimate which floors at "0"
  so the summary row always displays something.
*/
package quote

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUTS / OUTPUTS
// =============================================================================

// FhaMipInputs are the six raw MIP fields.
type FhaMipInputs struct {
	LoanStartMonthYear string `json:"loan_start_month_year"`
	StartingLoanBalance string `json:"starting_loan_balance"`
	PriorMipCostFactor  string `json:"prior_mip_cost_factor"` // percent
	RemainingMonths     string `json:"remaining_months"`      // integer, 1..36
	NewLoanAmount       string `json:"new_loan_amount"`
	NewMipCostFactor    string `json:"new_mip_cost_factor"` // percent
}

// FhaMipResult holds the five derived fields, display-formatted.
type FhaMipResult struct {
	PriorMipCost               string `json:"prior_mip_cost"`
	RemainingRefundValuePercent string `json:"remaining_refund_value_percent"`
	EstimatedPriorMipRefund    string `json:"estimated_prior_mip_refund"`
	NewMipCost                 string `json:"new_mip_cost"`
	AdjustedNewMipEstimate     string `json:"adjusted_new_mip_estimate"`
}

// SetRemainingMonths canonicalizes and clamps a remaining-months entry.
// Values above the 36-month refund window clamp to 36.
func (in FhaMipInputs) SetRemainingMonths(raw string) FhaMipInputs {
	digits := ToNumericString(raw)
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil && n > 36 {
			digits = "36"
		}
	}
	in.RemainingMonths = digits
	return in
}

// =============================================================================
// CALCULATOR
// =============================================================================

var (
	hundred      = decimal.NewFromInt(100)
	refundWindow = decimal.NewFromInt(36)
)

// ComputeFhaMip derives the MIP fields from the raw inputs. It never
// fails: missing or out-of-range inputs degrade to empty results.
func ComputeFhaMip(in FhaMipInputs) FhaMipResult {
	priorCost := ParseAmount(in.StartingLoanBalance).Mul(ParseAmount(in.PriorMipCostFactor)).Div(hundred)
	newCost := ParseAmount(in.NewLoanAmount).Mul(ParseAmount(in.NewMipCostFactor)).Div(hundred)

	var res FhaMipResult
	if priorCost.IsPositive() {
		res.PriorMipCost = FormatWhole(priorCost)
	}
	if newCost.IsPositive() {
		res.NewMipCost = FormatWhole(newCost)
	}

	refund := decimal.Zero
	months, err := strconv.Atoi(ToNumericString(in.RemainingMonths))
	if err == nil && months > 0 && months <= 36 {
		pct := decimal.NewFromInt(int64(months)).Div(refundWindow).Mul(hundred)
		res.RemainingRefundValuePercent = pct.StringFixed(2)
		refund = priorCost.Mul(pct).Div(hundred)
		if refund.IsPositive() {
			res.EstimatedPriorMipRefund = FormatWhole(refund)
		}
	}

	adjusted := newCost.Sub(refund)
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}
	// Always displayed, floored at zero: FormatWhole renders zero as "0".
	res.AdjustedNewMipEstimate = FormatWhole(adjusted)
	return res
}

// UpfrontMipAmount returns the adjusted new-MIP estimate as a decimal for
// loan-amount aggregation. Mirrors ComputeFhaMip without formatting.
func UpfrontMipAmount(in FhaMipInputs) decimal.Decimal {
	priorCost := ParseAmount(in.StartingLoanBalance).Mul(ParseAmount(in.PriorMipCostFactor)).Div(hundred)
	newCost := ParseAmount(in.NewLoanAmount).Mul(ParseAmount(in.NewMipCostFactor)).Div(hundred)

	refund := decimal.Zero
	months, err := strconv.Atoi(ToNumericString(in.RemainingMonths))
	if err == nil && months > 0 && months <= 36 {
		pct := decimal.NewFromInt(int64(months)).Div(refundWindow).Mul(hundred)
		refund = priorCost.Mul(pct).Div(hundred)
	}

	adjusted := newCost.Sub(refund)
	if adjusted.IsNegative() {
		return decimal.Zero
	}
	return adjusted.Round(0)
}
