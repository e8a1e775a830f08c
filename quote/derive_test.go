package quote

import "testing"

// aggregationSession builds the reference aggregation case: balance
// 200,000, closing costs 5,000, payoff interest 1,000, escrow 300.
func aggregationSession() Session {
	s := NewSession([]string{
		ServiceVAFundingFee, ServiceAppraisal, ServiceFloodCert,
		ServiceUnderwriting, ServiceTitleEscrow, ServicePayOffInterest,
		ServiceStateTax, ServiceProcessing, ServiceCreditReport,
	})
	s.SelectedRateIDs = []int{0}
	s.Columns[0].ExistingLoanBalance = "200000"
	s.Columns[0].PayOffInterest = "1000"
	s.ThirdParty = s.ThirdParty.
		WithValue(ServiceUnderwriting, 0, "1500").
		WithValue(ServiceTitleEscrow, 0, "2000").
		WithValue(ServiceStateTax, 0, "500").
		WithValue(ServiceProcessing, 0, "700").
		WithValue(ServiceCreditReport, 0, "300")
	s.Escrow.PropertyInsurance = "100"
	s.Escrow.PropertyTax = "200"
	return s
}

func TestDerive_NewEstLoanAmountAggregation(t *testing.T) {
	s := aggregationSession()

	out, changed := Derive(s)

	// 200000 + 0 + 0 + 0 + 5000 + 1000 + 300 + 0 = 206300
	if got := out.Columns[0].NewEstLoanAmount; got != "206300" {
		t.Errorf("newEstLoanAmount = %q, want 206300", got)
	}
	if !changed {
		t.Error("first derivation should report a change")
	}
}

func TestDerive_ExcludedServicesDoNotSum(t *testing.T) {
	// VA funding fee (s1), appraisal (s2) and payoff mirror (s6) are not
	// part of the closing-cost aggregate.
	s := aggregationSession()
	s.ThirdParty = s.ThirdParty.
		WithValue(ServiceVAFundingFee, 0, "9999").
		WithValue(ServiceAppraisal, 0, "9999").
		WithValue(ServicePayOffInterest, 0, "9999")

	out, _ := Derive(s)

	if got := out.Columns[0].NewEstLoanAmount; got != "206300" {
		t.Errorf("newEstLoanAmount = %q, want 206300", got)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	s := aggregationSession()
	s.Columns[0].Rate = "6.5"
	s.Existing.ExistingMortgagePayment = "2500"

	once, changed := Derive(s)
	if !changed {
		t.Fatal("first pass should write derived values")
	}

	twice, changed := Derive(once)
	if changed {
		t.Error("second pass with unchanged inputs must trigger no writes")
	}
	if twice.Columns != once.Columns {
		t.Errorf("outputs differ across idempotent passes:\n%+v\n%+v", once.Columns, twice.Columns)
	}
}

func TestDerive_PaymentAndSavings(t *testing.T) {
	// GIVEN: a full column with rate and term, plus existing payments
	s := NewSession(nil)
	s.SelectedRateIDs = []int{1}
	s.LoanTerm = "30-years"
	s.Columns[1].ExistingLoanBalance = "300000"
	s.Columns[1].Rate = "6"
	s.Existing.ExistingMortgagePayment = "2500"

	out, _ := Derive(s)

	if got := out.Columns[1].NewMonthlyPayment; got != "1799" {
		t.Errorf("newMonthlyPayment = %q, want 1799", got)
	}
	// 2500 - 1799 = 701
	if got := out.Columns[1].TotalMonthlySavings; got != "701" {
		t.Errorf("totalMonthlySavings = %q, want 701", got)
	}
}

func TestDerive_MissingRateLeavesSentinels(t *testing.T) {
	s := NewSession(nil)
	s.SelectedRateIDs = []int{0}
	s.Columns[0].ExistingLoanBalance = "300000"
	// No rate entered.

	out, _ := Derive(s)

	if out.Columns[0].NewEstLoanAmount != "300000" {
		t.Errorf("loan amount = %q, want 300000", out.Columns[0].NewEstLoanAmount)
	}
	if out.Columns[0].NewMonthlyPayment != "" {
		t.Errorf("payment = %q, want sentinel", out.Columns[0].NewMonthlyPayment)
	}
	if out.Columns[0].TotalMonthlySavings != "" {
		t.Errorf("savings = %q, want sentinel", out.Columns[0].TotalMonthlySavings)
	}
}

func TestDerive_UnselectedColumnsUntouched(t *testing.T) {
	s := NewSession(nil)
	s.SelectedRateIDs = []int{0}
	s.Columns[0].ExistingLoanBalance = "100000"
	s.Columns[3].ExistingLoanBalance = "500000"
	s.Columns[3].NewEstLoanAmount = "stale"

	out, _ := Derive(s)

	if out.Columns[3].NewEstLoanAmount != "stale" {
		t.Error("derivation must not touch unselected columns")
	}
}

func TestDerive_EmptySessionComputesNothing(t *testing.T) {
	s := NewSession(nil)

	out, changed := Derive(s)

	if changed {
		t.Error("an untouched session has nothing to derive")
	}
	if out.Columns[0].NewEstLoanAmount != "" {
		t.Errorf("loan amount = %q, want sentinel (zero sum means nothing entered)", out.Columns[0].NewEstLoanAmount)
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	s := aggregationSession()
	_, _ = Derive(s)
	if s.Columns[0].NewEstLoanAmount != "" {
		t.Error("Derive must not mutate its input session")
	}
}

func TestDerive_VaFeeAndMipFoldIn(t *testing.T) {
	s := aggregationSession()
	s.Columns[0].VAFundingFee = "2150.00"
	s.Fha.StartingLoanBalance = "0"
	s.Fha.NewLoanAmount = "100000"
	s.Fha.NewMipCostFactor = "1.75"

	out, _ := Derive(s)

	// 206300 + 2150 + 1750 = 210200
	if got := out.Columns[0].NewEstLoanAmount; got != "210200" {
		t.Errorf("newEstLoanAmount = %q, want 210200", got)
	}
}
