/*
scenarios.go - Demo scenario loaders

PURPOSE:
  Seeds the session store with worked examples so a demo (or a new hire)
  starts from quotes that exercise the interesting paths: a plain
  conventional refinance, a VA cash-out with the funding-fee workflow
  already applied, and an FHA streamline with an upfront-MIP refund.

  Loading a scenario resets the session store first; these are demo
  fixtures, not production data.
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/brokerdesk/quote-engine/quote"
)

type scenarioDef struct {
	ID          string
	Name        string
	Description string
	Build       func(serviceIDs []string) []quote.Session
}

var scenarios = []scenarioDef{
	{
		ID:          "conventional-refi",
		Name:        "Conventional Rate & Term",
		Description: "Two columns comparing 6.5% and 6.875% on a 300k refinance.",
		Build:       buildConventionalRefi,
	},
	{
		ID:          "va-cashout",
		Name:        "VA Cash Out",
		Description: "VA cash-out refinance with the funding fee calculated and applied.",
		Build:       buildVaCashOut,
	},
	{
		ID:          "fha-streamline",
		Name:        "FHA Streamline",
		Description: "FHA streamline inside the MIP refund window.",
		Build:       buildFhaStreamline,
	},
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, sc := range scenarios {
		dtos[i] = ScenarioDTO{ID: sc.ID, Name: sc.Name, Description: sc.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentScenario reports which scenario was last loaded.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string]string{"id": current})
}

// LoadScenario resets the session store and seeds one scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var def *scenarioDef
	for i := range scenarios {
		if scenarios[i].ID == req.ID {
			def = &scenarios[i]
			break
		}
	}
	if def == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	if err := h.Sessions.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset sessions", err)
		return
	}

	h.mu.RLock()
	serviceIDs := h.catalog.ServiceIDs()
	h.mu.RUnlock()

	var dtos []QuoteDTO
	for _, s := range def.Build(serviceIDs) {
		s, _ = quote.Derive(s)
		rec, err := h.Sessions.Create(r.Context(), s)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed scenario", err)
			return
		}
		dtos = append(dtos, toQuoteDTO(rec))
	}

	h.mu.Lock()
	h.currentScenario = def.ID
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

func buildConventionalRefi(serviceIDs []string) []quote.Session {
	s := quote.NewSession(serviceIDs)
	s.SelectedRateIDs = []int{0, 1}
	s.SelectedLoanCategory = "Conventional - Rate & Term Refinance"
	s.LoanTerm = "30-years"

	s.Columns[0].Rate = "6.5"
	s.Columns[0].ExistingLoanBalance = "300000"
	s.Columns[0].PayOffInterest = "1100"
	s.Columns[1].Rate = "6.875"
	s.Columns[1].ExistingLoanBalance = "300000"
	s.Columns[1].PayOffInterest = "1100"
	s.Columns[1].RateBuyDown = "0"

	s.ThirdParty = s.ThirdParty.
		WithValue(quote.ServiceUnderwriting, 0, "1495").
		WithValue(quote.ServiceUnderwriting, 1, "1495").
		WithValue(quote.ServiceProcessing, 0, "695").
		WithValue(quote.ServiceProcessing, 1, "695").
		WithValue(quote.ServiceCreditReport, 0, "85").
		WithValue(quote.ServiceCreditReport, 1, "85").
		WithValue(quote.ServiceTitleEscrow, 0, "1850").
		WithValue(quote.ServiceTitleEscrow, 1, "1850").
		WithValue(quote.ServiceStateTax, 0, "240").
		WithValue(quote.ServiceStateTax, 1, "240")

	s.Escrow = quote.SharedEscrowInputs{
		PropertyInsurance:  "120",
		PropertyTax:        "310",
		MonthlyInsurance:   "120",
		MonthlyPropertyTax: "310",
	}
	s.Existing = quote.ExistingPaymentInputs{
		ExistingMortgagePayment: "2460",
	}
	return []quote.Session{s}
}

func buildVaCashOut(serviceIDs []string) []quote.Session {
	s := quote.NewSession(serviceIDs)
	s.SelectedRateIDs = []int{0}
	s.SelectedLoanCategory = "VA - Cash Out Refinance"
	s.LoanTerm = "30-years"

	s.Columns[0].Rate = "6.25"
	s.Columns[0].ExistingLoanBalance = "240000"
	s.Columns[0].CashOutAmount = "40000"
	s.Columns[0].PayOffInterest = "950"

	s.ThirdParty = s.ThirdParty.
		WithValue(quote.ServiceUnderwriting, 0, "1495").
		WithValue(quote.ServiceTitleEscrow, 0, "1700").
		WithValue(quote.ServiceCreditReport, 0, "85")

	s.Existing = quote.ExistingPaymentInputs{
		ExistingMortgagePayment:   "2280",
		MonthlyPaymentDebtsPayOff: "640",
	}

	// Derive the base estimate, then run the funding-fee workflow the
	// way a broker would: Calculate, then apply the first-use tier.
	s, _ = quote.Derive(s)
	s = quote.VaCalculate(s)
	s = quote.VaApply(s, quote.VaTierFirstTimeCashOut)
	return []quote.Session{s}
}

func buildFhaStreamline(serviceIDs []string) []quote.Session {
	s := quote.NewSession(serviceIDs)
	s.SelectedRateIDs = []int{0}
	s.SelectedLoanCategory = "FHA - Streamline Refinance"
	s.LoanTerm = "30-years"

	s.Columns[0].Rate = "5.99"
	s.Columns[0].ExistingLoanBalance = "265000"
	s.Columns[0].PayOffInterest = "880"

	s.Fha = quote.FhaMipInputs{
		LoanStartMonthYear:  "03/2024",
		StartingLoanBalance: "268000",
		PriorMipCostFactor:  "1.75",
		RemainingMonths:     "30",
		NewLoanAmount:       "270000",
		NewMipCostFactor:    "1.75",
	}

	s.Existing = quote.ExistingPaymentInputs{
		ExistingMortgagePayment: "2040",
	}
	return []quote.Session{s}
}
