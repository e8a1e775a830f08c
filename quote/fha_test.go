package quote

import "testing"

func fhaInputs() FhaMipInputs {
	return FhaMipInputs{
		LoanStartMonthYear:  "06/2024",
		StartingLoanBalance: "300000",
		PriorMipCostFactor:  "1.75",
		RemainingMonths:     "36",
		NewLoanAmount:       "310000",
		NewMipCostFactor:    "1.75",
	}
}

func TestComputeFhaMip_FullRefundWindow(t *testing.T) {
	// GIVEN: a refinance at exactly 36 months remaining
	res := ComputeFhaMip(fhaInputs())

	// THEN: the refund percentage is the full 100.00
	if res.RemainingRefundValuePercent != "100.00" {
		t.Errorf("refund percent = %q, want 100.00", res.RemainingRefundValuePercent)
	}
	// 300000 * 1.75% = 5250
	if res.PriorMipCost != "5,250" {
		t.Errorf("prior MIP cost = %q, want 5,250", res.PriorMipCost)
	}
	if res.EstimatedPriorMipRefund != "5,250" {
		t.Errorf("refund = %q, want 5,250", res.EstimatedPriorMipRefund)
	}
	// 310000 * 1.75% = 5425; 5425 - 5250 = 175
	if res.NewMipCost != "5,425" {
		t.Errorf("new MIP cost = %q, want 5,425", res.NewMipCost)
	}
	if res.AdjustedNewMipEstimate != "175" {
		t.Errorf("adjusted estimate = %q, want 175", res.AdjustedNewMipEstimate)
	}
}

func TestComputeFhaMip_OutOfWindow(t *testing.T) {
	for _, months := range []string{"0", "37", ""} {
		in := fhaInputs()
		in.RemainingMonths = months

		res := ComputeFhaMip(in)

		if res.RemainingRefundValuePercent != "" {
			t.Errorf("months=%q: refund percent = %q, want empty", months, res.RemainingRefundValuePercent)
		}
		if res.EstimatedPriorMipRefund != "" {
			t.Errorf("months=%q: refund = %q, want empty", months, res.EstimatedPriorMipRefund)
		}
		// With no refund, the adjusted estimate is the full new MIP cost.
		if res.AdjustedNewMipEstimate != "5,425" {
			t.Errorf("months=%q: adjusted = %q, want 5,425", months, res.AdjustedNewMipEstimate)
		}
	}
}

func TestComputeFhaMip_FloorsAtZero(t *testing.T) {
	// GIVEN: a refund bigger than the new MIP cost
	in := fhaInputs()
	in.NewLoanAmount = "100000"

	res := ComputeFhaMip(in)

	// THEN: the adjusted estimate floors at "0", never negative and never
	// blank; this row always displays something.
	if res.AdjustedNewMipEstimate != "0" {
		t.Errorf("adjusted estimate = %q, want 0", res.AdjustedNewMipEstimate)
	}
}

func TestComputeFhaMip_EmptyInputs(t *testing.T) {
	res := ComputeFhaMip(FhaMipInputs{})

	if res.PriorMipCost != "" || res.NewMipCost != "" || res.EstimatedPriorMipRefund != "" {
		t.Errorf("blank inputs should yield empty money fields, got %+v", res)
	}
	if res.AdjustedNewMipEstimate != "0" {
		t.Errorf("adjusted estimate = %q, want 0", res.AdjustedNewMipEstimate)
	}
}

func TestSetRemainingMonths_Clamps(t *testing.T) {
	in := FhaMipInputs{}

	if got := in.SetRemainingMonths("40").RemainingMonths; got != "36" {
		t.Errorf("clamp: got %q, want 36", got)
	}
	if got := in.SetRemainingMonths("36").RemainingMonths; got != "36" {
		t.Errorf("boundary: got %q, want 36", got)
	}
	if got := in.SetRemainingMonths("12mo").RemainingMonths; got != "12" {
		t.Errorf("strip: got %q, want 12", got)
	}
	if got := in.SetRemainingMonths("").RemainingMonths; got != "" {
		t.Errorf("blank: got %q, want empty", got)
	}
}

func TestUpfrontMipAmount_MatchesDisplay(t *testing.T) {
	got := UpfrontMipAmount(fhaInputs())
	if got.String() != "175" {
		t.Errorf("upfront MIP = %s, want 175", got)
	}
	if !UpfrontMipAmount(FhaMipInputs{}).IsZero() {
		t.Error("blank inputs should yield zero upfront MIP")
	}
}
