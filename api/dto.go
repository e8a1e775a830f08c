/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the internal domain
  model from the wire contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation happens in handlers; DTOs are pure data carriers. Partial
  updates use pointer fields: nil means "leave unchanged".

SEE ALSO:
  - handlers.go: Uses these types
  - quote/types.go: the session model these mirror
*/
package api

import (
	"time"

	"github.com/brokerdesk/quote-engine/intake"
	"github.com/brokerdesk/quote-engine/quote"
	"github.com/brokerdesk/quote-engine/store/sqlite"
)

// =============================================================================
// QUOTE SESSION
// =============================================================================

// ColumnDTO is one rate column with display-formatted derived values
// alongside the canonical ones.
type ColumnDTO struct {
	Index               int    `json:"index"`
	Selected            bool   `json:"selected"`
	Rate                string `json:"rate"`
	ExistingLoanBalance string `json:"existing_loan_balance"`
	CashOutAmount       string `json:"cash_out_amount"`
	RateBuyDown         string `json:"rate_buy_down"`
	VAFundingFee        string `json:"va_funding_fee"`
	PayOffInterest      string `json:"pay_off_interest"`

	NewEstLoanAmount           string `json:"new_est_loan_amount"`
	NewEstLoanAmountDisplay    string `json:"new_est_loan_amount_display"`
	NewMonthlyPayment          string `json:"new_monthly_payment"`
	NewMonthlyPaymentDisplay   string `json:"new_monthly_payment_display"`
	TotalMonthlySavings        string `json:"total_monthly_savings"`
	TotalMonthlySavingsDisplay string `json:"total_monthly_savings_display"`
}

// SectionsDTO carries the category-driven visibility flags so the form
// layer renders without re-implementing the predicates.
type SectionsDTO struct {
	ExistingLoanBalance bool `json:"existing_loan_balance"`
	CashOut             bool `json:"cash_out"`
	GovernmentFeeRow    bool `json:"government_fee_row"`
	AppraisalInspection bool `json:"appraisal_inspection"`
}

// QuoteDTO is a full session response.
type QuoteDTO struct {
	ID                   string                `json:"id"`
	SelectedRateIDs      []int                 `json:"selected_rate_ids"`
	SelectedLoanCategory string                `json:"selected_loan_category"`
	LoanTerm             string                `json:"loan_term"`
	IsCustomTerm         bool                  `json:"is_custom_term"`
	CustomTermYears      string                `json:"custom_term_years"`
	RateBuydown          string                `json:"rate_buydown"`
	EscrowReserves       string                `json:"escrow_reserves"`
	MonthlyEscrow        string                `json:"monthly_escrow"`
	IsVAExempt           bool                  `json:"is_va_exempt"`
	IsVAJumboExempt      bool                  `json:"is_va_jumbo_exempt"`
	Columns              []ColumnDTO           `json:"columns"`
	ThirdParty           quote.ServiceValues   `json:"third_party"`
	Escrow               quote.SharedEscrowInputs `json:"escrow"`
	Existing             quote.ExistingPaymentInputs `json:"existing"`
	Fha                  quote.FhaMipInputs    `json:"fha"`
	Va                   quote.VaState         `json:"va"`
	Sections             SectionsDTO           `json:"sections"`
	CreatedAt            string                `json:"created_at"`
	UpdatedAt            string                `json:"updated_at"`
}

// ColumnUpdate is a partial update for one rate column's raw inputs.
// Derived fields are not accepted here; only Derive writes them.
type ColumnUpdate struct {
	Index               int     `json:"index"`
	Rate                *string `json:"rate,omitempty"`
	ExistingLoanBalance *string `json:"existing_loan_balance,omitempty"`
	CashOutAmount       *string `json:"cash_out_amount,omitempty"`
	RateBuyDown         *string `json:"rate_buy_down,omitempty"`
	VAFundingFee        *string `json:"va_funding_fee,omitempty"`
	PayOffInterest      *string `json:"pay_off_interest,omitempty"`
}

// ServiceCellUpdate sets one third-party service value for one column.
type ServiceCellUpdate struct {
	ServiceID string `json:"service_id"`
	Column    int    `json:"column"`
	Value     string `json:"value"`
}

// UpdateInputsRequest is the partial-update body for a session's raw
// inputs. Sub-structs replace wholesale when present (the form dialogs
// submit their whole state).
type UpdateInputsRequest struct {
	SelectedRateIDs      *[]int  `json:"selected_rate_ids,omitempty"`
	SelectedLoanCategory *string `json:"selected_loan_category,omitempty"`
	LoanTerm             *string `json:"loan_term,omitempty"`
	IsCustomTerm         *bool   `json:"is_custom_term,omitempty"`
	CustomTermYears      *string `json:"custom_term_years,omitempty"`
	RateBuydown          *string `json:"rate_buydown,omitempty"`
	EscrowReserves       *string `json:"escrow_reserves,omitempty"`
	MonthlyEscrow        *string `json:"monthly_escrow,omitempty"`
	IsVAExempt           *bool   `json:"is_va_exempt,omitempty"`
	IsVAJumboExempt      *bool   `json:"is_va_jumbo_exempt,omitempty"`

	Columns    []ColumnUpdate      `json:"columns,omitempty"`
	ThirdParty []ServiceCellUpdate `json:"third_party,omitempty"`

	Escrow   *quote.SharedEscrowInputs    `json:"escrow,omitempty"`
	Existing *quote.ExistingPaymentInputs `json:"existing,omitempty"`
	Fha      *quote.FhaMipInputs          `json:"fha,omitempty"`
}

// VaApplyRequest picks which tier an Apply action broadcasts.
type VaApplyRequest struct {
	Tier string `json:"tier"`
}

// =============================================================================
// COUNTY LOOKUP
// =============================================================================

type CountyDTO struct {
	Zip    string `json:"zip"`
	County string `json:"county"`
	State  string `json:"state"`
	Cached bool   `json:"cached"`
}

// =============================================================================
// INTAKE
// =============================================================================

// StepRequest carries one step's payload; only the matching sub-struct
// is read for a given step.
type StepRequest struct {
	Contact  *intake.Contact        `json:"contact,omitempty"`
	Property *intake.Property       `json:"property,omitempty"`
	Loans    *[]intake.ExistingLoan `json:"loans,omitempty"`
	Income   *intake.Income         `json:"income,omitempty"`
}

// =============================================================================
// POSTS
// =============================================================================

type PostDTO struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Channel   string `json:"channel"`
	CreatedAt string `json:"created_at"`
}

type CreatePostRequest struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Channel string `json:"channel"`
}

func toPostDTO(p sqlite.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Author:    p.Author,
		Title:     p.Title,
		Body:      p.Body,
		Channel:   p.Channel,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// CATALOG / SCENARIOS
// =============================================================================

type AddServiceRequest struct {
	CategoryID string `json:"category_id"`
	ID         string `json:"id"`
	Name       string `json:"name"`
}

type RenameServiceRequest struct {
	Name string `json:"name"`
}

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ID string `json:"id"`
}
