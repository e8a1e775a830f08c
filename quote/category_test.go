package quote

import "testing"

func TestClassifiers(t *testing.T) {
	cases := []struct {
		category string
		pred     func(string) bool
		want     bool
	}{
		{"VA - Cash Out Refinance", IsVALoan, true},
		{"VA Jumbo - Cash Out Refinance", IsVALoan, false},
		{"VA Jumbo - Cash Out Refinance", IsVAJumboLoan, true},
		{"FHA - Streamline Refinance", IsFHALoan, true},
		{"FHA - Streamline Refinance", IsVALoan, false},
		{"Second Loan - HELOC", IsHELOC, true},
		{"Second Loan - Fixed Second", IsFixedSecond, true},
		{"Conventional - Purchase", IsPurchase, true},
		{"VA - Cash Out Refinance", IsCashOut, true},
		{"Conventional - Rate & Term Refinance", IsRateTerm, true},
		{"VA - IRRRL", IsIRRRL, true},
		{"FHA - Streamline Refinance", IsStreamline, true},
		// Case-sensitive: the catalog vocabulary is exact.
		{"va - cash out refinance", IsVALoan, false},
	}
	for _, c := range cases {
		if got := c.pred(c.category); got != c.want {
			t.Errorf("classifier(%q) = %v, want %v", c.category, got, c.want)
		}
	}
}

func TestVisibility_ExistingLoanBalance(t *testing.T) {
	hidden := []string{
		"Second Loan - HELOC",
		"Second Loan - Fixed Second",
		"Conventional - Purchase",
		"FHA - Purchase",
	}
	for _, cat := range hidden {
		if ShowExistingLoanBalance(cat) {
			t.Errorf("existing-balance section should be hidden for %q", cat)
		}
	}
	if !ShowExistingLoanBalance("VA - Cash Out Refinance") {
		t.Error("existing-balance section should show for refinances")
	}
}

func TestVisibility_CashOut(t *testing.T) {
	if !ShowCashOut("Conventional - Cash Out Refinance") {
		t.Error("cash-out section should show for cash-out products")
	}
	if ShowCashOut("Conventional - Rate & Term Refinance") {
		t.Error("cash-out section should hide otherwise")
	}
}

func TestVisibility_GovernmentFeeRow(t *testing.T) {
	for _, cat := range []string{"VA - IRRRL", "VA Jumbo - Cash Out Refinance", "FHA - Purchase"} {
		if !ShowGovernmentFeeRow(cat) {
			t.Errorf("fee row should show for %q", cat)
		}
	}
	if ShowGovernmentFeeRow("Conventional - Purchase") {
		t.Error("fee row should hide for conventional loans")
	}
}

func TestVisibility_AppraisalInspection(t *testing.T) {
	hidden := []string{
		"VA - Rate & Term Refinance",
		"VA - IRRRL",
		"VA Jumbo - Rate & Term Refinance",
		"FHA - Rate & Term Refinance",
		"FHA - Streamline Refinance",
	}
	for _, cat := range hidden {
		if ShowAppraisalInspection(cat) {
			t.Errorf("appraisal row should be hidden for %q", cat)
		}
	}
	shown := []string{
		"VA - Cash Out Refinance",
		"FHA - Cash Out Refinance",
		"Conventional - Rate & Term Refinance",
	}
	for _, cat := range shown {
		if !ShowAppraisalInspection(cat) {
			t.Errorf("appraisal row should show for %q", cat)
		}
	}
}
