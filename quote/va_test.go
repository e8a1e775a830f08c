package quote

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateVaFees_Tiers(t *testing.T) {
	// GIVEN: a 100,000 base loan amount
	tiers := CalculateVaFees(decimal.NewFromInt(100000))

	// THEN: the statutory tier percentages apply
	if tiers.FirstTimeCashOut != "2,150.00" {
		t.Errorf("first-time cash-out = %q, want 2,150.00", tiers.FirstTimeCashOut)
	}
	if tiers.SubsequentCashOut != "3,300.00" {
		t.Errorf("subsequent cash-out = %q, want 3,300.00", tiers.SubsequentCashOut)
	}
	if tiers.RateTerm != "500.00" {
		t.Errorf("rate & term = %q, want 500.00", tiers.RateTerm)
	}
	if tiers.IRRRL != "500.00" {
		t.Errorf("IRRRL = %q, want 500.00", tiers.IRRRL)
	}
}

func TestVaCalculate_SubtractsEmbeddedFee(t *testing.T) {
	// GIVEN: a column whose estimate already embeds a 2,150 funding fee
	s := NewSession(nil)
	s.Columns[0].NewEstLoanAmount = "102150"
	s.Columns[0].VAFundingFee = "2150"

	// WHEN: Calculate fires
	s = VaCalculate(s)

	// THEN: the base is 100,000, not 102,150 - no fee-on-fee compounding
	if s.Va.Tiers.FirstTimeCashOut != "2,150.00" {
		t.Errorf("first-time cash-out = %q, want 2,150.00", s.Va.Tiers.FirstTimeCashOut)
	}
	if s.Va.Mode != VaCalculated {
		t.Errorf("mode = %q, want calculated", s.Va.Mode)
	}
}

func TestVaCalculate_ExemptIsNoOp(t *testing.T) {
	s := NewSession(nil)
	s.Columns[0].NewEstLoanAmount = "100000"
	s.IsVAExempt = true

	out := VaCalculate(s)

	if out.Va.Mode != VaIdle {
		t.Errorf("mode = %q, want idle", out.Va.Mode)
	}
	if out.Va.Tiers != (VaFeeTiers{}) {
		t.Errorf("tiers should be untouched, got %+v", out.Va.Tiers)
	}

	s.IsVAExempt = false
	s.IsVAJumboExempt = true
	out = VaCalculate(s)
	if out.Va.Mode != VaIdle {
		t.Error("VA-Jumbo-exempt should also gate the calculation off")
	}
}

func TestVaClear_ForcesZeroes(t *testing.T) {
	s := NewSession(nil)
	s.Columns[0].NewEstLoanAmount = "100000"
	s = VaCalculate(s)

	s = VaClear(s)

	want := VaFeeTiers{
		FirstTimeCashOut:  "0.00",
		SubsequentCashOut: "0.00",
		RateTerm:          "0.00",
		IRRRL:             "0.00",
	}
	if s.Va.Tiers != want {
		t.Errorf("tiers = %+v, want all 0.00", s.Va.Tiers)
	}
	if s.Va.Applied != "0.00" {
		t.Errorf("applied = %q, want 0.00", s.Va.Applied)
	}
	if s.Va.Mode != VaIdle {
		t.Errorf("mode = %q, want idle (tier inputs unlock)", s.Va.Mode)
	}
}

func TestVaApply_BroadcastsToSelectedColumns(t *testing.T) {
	// GIVEN: columns 0 and 2 selected, tiers calculated
	s := NewSession(nil)
	s.SelectedRateIDs = []int{0, 2}
	s.Columns[0].NewEstLoanAmount = "100000"
	s = VaCalculate(s)

	// WHEN: the IRRRL tier is applied
	out := VaApply(s, VaTierIRRRL)

	// THEN: every selected column gets the canonical value; the display
	// comma never lands in session state
	if out.Columns[0].VAFundingFee != "500.00" {
		t.Errorf("col0 fee = %q, want 500.00", out.Columns[0].VAFundingFee)
	}
	if out.Columns[2].VAFundingFee != "500.00" {
		t.Errorf("col2 fee = %q, want 500.00", out.Columns[2].VAFundingFee)
	}
	if out.Columns[1].VAFundingFee != "" {
		t.Errorf("col1 fee = %q, want untouched", out.Columns[1].VAFundingFee)
	}
	if out.Va.Applied != "500.00" {
		t.Errorf("applied = %q, want 500.00", out.Va.Applied)
	}

	// AND: the input session is unchanged (pure value semantics)
	if s.Columns[0].VAFundingFee != "" {
		t.Error("VaApply must not mutate its input session")
	}
}

func TestVaApply_UnknownTier(t *testing.T) {
	s := NewSession(nil)
	out := VaApply(s, VaTier("bogus"))
	if out.Va.Applied != "" {
		t.Errorf("unknown tier should be a no-op, applied = %q", out.Va.Applied)
	}
}
