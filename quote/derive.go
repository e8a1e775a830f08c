/*
derive.go - Rate-column orchestrator

PURPOSE:
  The single pure reducer tying the engine together. For each selected
  rate column it recomputes, strictly downstream:

    1. newEstLoanAmount  = existing balance + cash out + buydown
                         + VA funding fee + closing costs (closing.go)
                         + payoff interest + shared monthly escrow
                         + FHA upfront MIP (fha.go)
    2. newMonthlyPayment = amortization of that amount (payment.go)
    3. totalMonthlySavings = existing payments - new payment

  Derive(session) returns a new session with the derived fields written
  back, plus whether anything actually changed. Writing only on change is
  what lets a host re-run the reducer on every input mutation without
  update cycles: a second call on unchanged inputs is a no-op.

  There is no hidden trigger graph. Columns outside the selected set keep
  their previous derived values untouched.
*/
package quote

// Derive recomputes the derived fields of every selected column. The
// input session is never mutated.
func Derive(s Session) (Session, bool) {
	out := s.Clone()
	changed := false

	sharedEscrow := TotalMonthlyEscrow(s.Escrow)
	upfrontMip := UpfrontMipAmount(s.Fha)
	existing := TotalExistingMonthlyPayments(s.Existing)
	years := TermYears(s)
	addOn := EscrowAddOn(s)

	for _, i := range s.SelectedRateIDs {
		if i < 0 || i >= NumColumns {
			continue
		}
		col := s.Columns[i]

		loanAmount := ParseAmount(col.ExistingLoanBalance).
			Add(ParseAmount(col.CashOutAmount)).
			Add(ParseAmount(col.RateBuyDown)).
			Add(ParseAmount(col.VAFundingFee)).
			Add(ClosingCosts(s.ThirdParty, i)).
			Add(ParseAmount(col.PayOffInterest)).
			Add(sharedEscrow).
			Add(upfrontMip)

		// All addends are non-negative, so a zero sum means nothing has
		// been entered yet: keep the not-computable sentinel.
		newAmount := ""
		if loanAmount.IsPositive() {
			newAmount = loanAmount.Round(0).String()
		}

		newPayment := MonthlyPayment(loanAmount, ParseAmount(col.Rate), years, addOn)
		savings := MonthlySavings(existing, newPayment)

		if out.Columns[i].NewEstLoanAmount != newAmount {
			out.Columns[i].NewEstLoanAmount = newAmount
			changed = true
		}
		if out.Columns[i].NewMonthlyPayment != newPayment {
			out.Columns[i].NewMonthlyPayment = newPayment
			changed = true
		}
		if out.Columns[i].TotalMonthlySavings != savings {
			out.Columns[i].TotalMonthlySavings = savings
			changed = true
		}
	}

	return out, changed
}
