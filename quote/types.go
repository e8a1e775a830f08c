/*
types.go - Quote session data model

PURPOSE:
  Defines the shared state a quote comparison operates over: up to four
  parallel rate columns, the third-party service fee grid, shared escrow
  and existing-payment inputs, FHA MIP inputs and the VA funding-fee
  workflow state.

KEY CONCEPTS:
  - RateColumn: one of 4 fixed candidate-quote slots compared side by side.
    Derived fields (new est. loan amount, new monthly payment, total
    monthly savings) are always recomputable from the raw fields plus the
    shared inputs; they are never independent source-of-truth.
  - ServiceValues: serviceID -> 4 values, one per column. Which services
    exist (and how they group into categories) is runtime configuration
    owned by the catalog package, keyed by stable string IDs.
  - Session: the whole quote state as a plain value. Updates replace the
    session wholesale (copy-on-write); nothing in this package mutates a
    session the caller still holds.

DESIGN PRINCIPLES:
  1. Values, not pointers: the engine is a pure reducer over Session.
  2. Canonical numeric strings per format.go; "" means "not entered".
  3. decimal.Decimal for every computation, no float64.

SEE ALSO:
  - derive.go: the orchestrator recomputing derived fields
  - store/memory.go: session persistence with whole-value replacement
*/
package quote

// =============================================================================
// MODES
// =============================================================================

// EscrowReservesMode controls whether escrow reserves participate in the
// new-payment computation at all.
type EscrowReservesMode string

const (
	EscrowNotIncluded EscrowReservesMode = "escrow-not-included"
	EscrowIncluded    EscrowReservesMode = "escrow-included"
)

// MonthlyEscrowMode selects which escrow components fold into the monthly
// payment once reserves are included.
type MonthlyEscrowMode string

const (
	MonthlyEscrowSelect        MonthlyEscrowMode = "select"
	MonthlyEscrowTaxInsurance  MonthlyEscrowMode = "includes-tax-insurance"
	MonthlyEscrowTaxOnly       MonthlyEscrowMode = "includes-tax-only"
	MonthlyEscrowInsuranceOnly MonthlyEscrowMode = "includes-insurance-only"
)

// =============================================================================
// WELL-KNOWN SERVICE IDS
// =============================================================================

// Service IDs referenced by the engine itself. The catalog may define more;
// these are the ones with hardwired roles in aggregation and visibility.
const (
	ServiceVAFundingFee     = "s1"
	ServiceAppraisal        = "s2"
	ServiceFloodCert        = "s3"
	ServiceUnderwriting     = "s4"
	ServiceTitleEscrow      = "s5"
	ServicePayOffInterest   = "s6"
	ServiceStateTax         = "s7"
	ServiceProcessing       = "s8"
	ServiceCreditReport     = "s9"
)

// NumColumns is the fixed number of side-by-side rate slots.
const NumColumns = 4

// =============================================================================
// ENTITIES
// =============================================================================

// RateColumn is one candidate-quote slot.
type RateColumn struct {
	Rate                string `json:"rate"`
	ExistingLoanBalance string `json:"existing_loan_balance"`
	CashOutAmount       string `json:"cash_out_amount"`
	RateBuyDown         string `json:"rate_buy_down"`
	VAFundingFee        string `json:"va_funding_fee"`
	PayOffInterest      string `json:"pay_off_interest"`

	// Derived. Written only by Derive, only on change.
	NewEstLoanAmount    string `json:"new_est_loan_amount"`
	NewMonthlyPayment   string `json:"new_monthly_payment"`
	TotalMonthlySavings string `json:"total_monthly_savings"`
}

// ServiceValues maps a service ID to its per-column values.
type ServiceValues map[string][NumColumns]string

// Clone returns an independent copy of the map.
func (sv ServiceValues) Clone() ServiceValues {
	out := make(ServiceValues, len(sv))
	for k, v := range sv {
		out[k] = v
	}
	return out
}

// Value returns the raw value for a service at a column, "" when unset or
// the column index is out of range.
func (sv ServiceValues) Value(serviceID string, col int) string {
	if col < 0 || col >= NumColumns {
		return ""
	}
	return sv[serviceID][col]
}

// WithValue returns a copy with one cell replaced.
func (sv ServiceValues) WithValue(serviceID string, col int, value string) ServiceValues {
	if col < 0 || col >= NumColumns {
		return sv
	}
	out := sv.Clone()
	row := out[serviceID]
	row[col] = value
	out[serviceID] = row
	return out
}

// SharedEscrowInputs are the escrow figures shared across all columns.
// The propertyInsurance/propertyTax pair feeds the new-escrow-reserves
// summary; the monthlyInsurance/monthlyPropertyTax pair feeds the
// new-monthly-payment dialog. They are independent inputs, not aliases.
type SharedEscrowInputs struct {
	PropertyInsurance      string `json:"property_insurance"`
	PropertyTax            string `json:"property_tax"`
	StatementEscrowBalance string `json:"statement_escrow_balance"`
	MonthlyInsurance       string `json:"monthly_insurance"`
	MonthlyPropertyTax     string `json:"monthly_property_tax"`
}

// ExistingPaymentInputs feed the total-existing-monthly-payments sum that
// savings are measured against.
type ExistingPaymentInputs struct {
	ExistingMortgagePayment   string `json:"existing_mortgage_payment"`
	MonthlyPaymentDebtsPayOff string `json:"monthly_payment_debts_pay_off"`
	MonthlyPaymentOtherDebts  string `json:"monthly_payment_other_debts"`
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the complete quote state. It is a plain value: engine
// operations take a Session and return a new one.
type Session struct {
	Columns         [NumColumns]RateColumn `json:"columns"`
	SelectedRateIDs []int                  `json:"selected_rate_ids"`

	SelectedLoanCategory string `json:"selected_loan_category"`
	LoanTerm             string `json:"loan_term"` // "{N}-years"
	IsCustomTerm         bool   `json:"is_custom_term"`
	CustomTermYears      string `json:"custom_term_years"`
	RateBuydown          string `json:"rate_buydown"` // "no" | anything else enables the row

	EscrowReserves EscrowReservesMode `json:"escrow_reserves"`
	MonthlyEscrow  MonthlyEscrowMode  `json:"monthly_escrow"`

	IsVAExempt      bool `json:"is_va_exempt"`
	IsVAJumboExempt bool `json:"is_va_jumbo_exempt"`

	ThirdParty ServiceValues         `json:"third_party"`
	Escrow     SharedEscrowInputs    `json:"escrow"`
	Existing   ExistingPaymentInputs `json:"existing"`
	Fha        FhaMipInputs          `json:"fha"`
	Va         VaState               `json:"va"`
}

// NewSession returns a session with empty/zero defaults. serviceIDs seeds
// the third-party grid so every configured service has a row.
func NewSession(serviceIDs []string) Session {
	sv := make(ServiceValues, len(serviceIDs))
	for _, id := range serviceIDs {
		sv[id] = [NumColumns]string{}
	}
	return Session{
		SelectedRateIDs: []int{0},
		LoanTerm:        "30-years",
		RateBuydown:     "no",
		EscrowReserves:  EscrowNotIncluded,
		MonthlyEscrow:   MonthlyEscrowSelect,
		ThirdParty:      sv,
		Va:              VaState{Mode: VaIdle},
	}
}

// Clone returns a deep copy. Columns and embedded structs copy by value;
// the slice and map need explicit copies.
func (s Session) Clone() Session {
	out := s
	out.SelectedRateIDs = append([]int(nil), s.SelectedRateIDs...)
	out.ThirdParty = s.ThirdParty.Clone()
	return out
}

// IsSelected reports whether column i is among the selected rate slots.
func (s Session) IsSelected(i int) bool {
	for _, id := range s.SelectedRateIDs {
		if id == i {
			return true
		}
	}
	return false
}
