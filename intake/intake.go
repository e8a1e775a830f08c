/*
Package intake models the multi-step client-intake form.

PURPOSE:
  New clients work through a fixed sequence of steps - contact, property,
  current loans, income - before the application is reviewed and
  submitted. Each step is validated on its own, and an application can be
  saved as a draft at any step and resumed later.

STEPS:
  0 contact        name, email, phone
  1 property       address, 5-digit ZIP, estimated value
  2 current-loans  zero or more existing liens
  3 income         employer and monthly income
  4 review         submit gate: every prior step must validate

  Like the quote engine, applications are plain values: ApplyStep and
  Submit return a new Application and never mutate their input.

SEE ALSO:
  - store/sqlite: draft persistence
  - api/handlers.go: the step endpoints
*/
package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/brokerdesk/quote-engine/quote"
)

// =============================================================================
// TYPES
// =============================================================================

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Step indices, in form order.
const (
	StepContact = iota
	StepProperty
	StepLoans
	StepIncome
	StepReview
	stepCount
)

// StepNames maps step indices to their route segments.
var StepNames = []string{"contact", "property", "current-loans", "income", "review"}

// StepIndex resolves a route segment to its step index, -1 when unknown.
func StepIndex(name string) int {
	for i, n := range StepNames {
		if n == name {
			return i
		}
	}
	return -1
}

type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Property struct {
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	County         string `json:"county"`
	EstimatedValue string `json:"estimated_value"`
}

type ExistingLoan struct {
	Lender         string `json:"lender"`
	Balance        string `json:"balance"`
	Rate           string `json:"rate"`
	MonthlyPayment string `json:"monthly_payment"`
}

type Income struct {
	Employer      string `json:"employer"`
	Position      string `json:"position"`
	YearsEmployed string `json:"years_employed"`
	MonthlyIncome string `json:"monthly_income"`
}

// Application is the full intake form state.
type Application struct {
	ID          string         `json:"id"`
	Status      Status         `json:"status"`
	CurrentStep int            `json:"current_step"`
	Contact     Contact        `json:"contact"`
	Property    Property       `json:"property"`
	Loans       []ExistingLoan `json:"loans"`
	Income      Income         `json:"income"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// New returns a fresh draft at the first step.
func New(id string) Application {
	now := time.Now().UTC()
	return Application{
		ID:          id,
		Status:      StatusDraft,
		CurrentStep: StepContact,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// =============================================================================
// STEP VALIDATION
// =============================================================================

// ValidateStep checks one step's fields in isolation.
func (a Application) ValidateStep(step int) error {
	switch step {
	case StepContact:
		if strings.TrimSpace(a.Contact.FirstName) == "" || strings.TrimSpace(a.Contact.LastName) == "" {
			return fmt.Errorf("contact: first and last name are required")
		}
		if !strings.Contains(a.Contact.Email, "@") {
			return fmt.Errorf("contact: a valid email is required")
		}
	case StepProperty:
		if strings.TrimSpace(a.Property.Street) == "" {
			return fmt.Errorf("property: street address is required")
		}
		if len(quote.ToNumericString(a.Property.Zip)) != 5 {
			return fmt.Errorf("property: a 5-digit ZIP is required")
		}
	case StepLoans:
		for i, l := range a.Loans {
			if quote.ToNumericString(l.Balance) == "" {
				return fmt.Errorf("loan %d: balance is required", i+1)
			}
		}
	case StepIncome:
		if strings.TrimSpace(a.Income.Employer) == "" {
			return fmt.Errorf("income: employer is required")
		}
		if quote.ToNumericString(a.Income.MonthlyIncome) == "" {
			return fmt.Errorf("income: monthly income is required")
		}
	case StepReview:
		// Review has no fields of its own.
	default:
		return fmt.Errorf("unknown step %d", step)
	}
	return nil
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// ApplyStep validates and records one step's data, advancing the
// current-step marker past it. Going back and editing an earlier step
// does not lose progress.
func (a Application) ApplyStep(step int, mutate func(*Application)) (Application, error) {
	if step < 0 || step >= stepCount {
		return a, fmt.Errorf("unknown step %d", step)
	}
	if a.Status == StatusSubmitted {
		return a, fmt.Errorf("application %s is already submitted", a.ID)
	}

	out := a
	out.Loans = append([]ExistingLoan(nil), a.Loans...)
	mutate(&out)

	if err := out.ValidateStep(step); err != nil {
		return a, err
	}
	if step+1 > out.CurrentStep {
		out.CurrentStep = step + 1
	}
	out.UpdatedAt = time.Now().UTC()
	return out, nil
}

// Submit gates on every step validating, then marks the application
// submitted. Submitted applications are read-only.
func (a Application) Submit() (Application, error) {
	if a.Status == StatusSubmitted {
		return a, fmt.Errorf("application %s is already submitted", a.ID)
	}
	for step := StepContact; step < StepReview; step++ {
		if err := a.ValidateStep(step); err != nil {
			return a, fmt.Errorf("step %s: %w", StepNames[step], err)
		}
	}
	out := a
	out.Status = StatusSubmitted
	out.CurrentStep = StepReview
	out.UpdatedAt = time.Now().UTC()
	return out, nil
}
