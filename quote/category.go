/*
category.go - Loan-category classifiers and section visibility

PURPOSE:
  Pure predicates over the loan-category label chosen from the loan-program
  catalog. The label is an opaque string drawn from a controlled vocabulary
  ("VA - Cash Out Refinance", "FHA - Streamline Refinance", ...); the
  predicates are case-sensitive prefix/substring tests against it.

  IsVALoan and IsFHALoan never both hold for catalog-produced labels, but
  nothing here assumes that: each check is independent.

VISIBILITY:
  The Show* helpers decide which form sections apply for a category. They
  gate rendering only; the derivation in derive.go runs the same math
  regardless (hidden sections simply hold empty inputs).

SEE ALSO:
  - catalog/catalog.go: the loan-program vocabulary
  - derive.go: aggregation consuming these predicates
*/
package quote

import "strings"

// =============================================================================
// CLASSIFIERS
// =============================================================================

func IsVALoan(category string) bool {
	return strings.HasPrefix(category, "VA - ")
}

func IsVAJumboLoan(category string) bool {
	return strings.HasPrefix(category, "VA Jumbo - ")
}

func IsFHALoan(category string) bool {
	return strings.HasPrefix(category, "FHA - ")
}

func IsHELOC(category string) bool {
	return category == "Second Loan - HELOC"
}

func IsFixedSecond(category string) bool {
	return category == "Second Loan - Fixed Second"
}

func IsPurchase(category string) bool {
	return strings.Contains(category, "Purchase")
}

func IsCashOut(category string) bool {
	return strings.Contains(category, "Cash Out")
}

func IsRateTerm(category string) bool {
	return strings.Contains(category, "Rate & Term")
}

func IsIRRRL(category string) bool {
	return strings.Contains(category, "IRRRL")
}

func IsStreamline(category string) bool {
	return strings.Contains(category, "Streamline")
}

// =============================================================================
// SECTION VISIBILITY
// =============================================================================

// ShowExistingLoanBalance hides the existing-balance section for second
// loans and purchases, where there is no balance being refinanced.
func ShowExistingLoanBalance(category string) bool {
	return !IsHELOC(category) && !IsFixedSecond(category) && !IsPurchase(category)
}

// ShowCashOut shows the cash-out row only for cash-out products.
func ShowCashOut(category string) bool {
	return IsCashOut(category)
}

// ShowGovernmentFeeRow shows the VA funding fee / FHA MIP row.
func ShowGovernmentFeeRow(category string) bool {
	return IsVALoan(category) || IsVAJumboLoan(category) || IsFHALoan(category)
}

// ShowAppraisalInspection hides the appraisal row for streamlined products
// that reuse the existing appraisal. The VA and FHA conditions overlap on
// "Rate & Term" but are evaluated independently, matching the form.
func ShowAppraisalInspection(category string) bool {
	if (IsVALoan(category) || IsVAJumboLoan(category)) && (IsRateTerm(category) || IsIRRRL(category)) {
		return false
	}
	if IsFHALoan(category) && (IsRateTerm(category) || IsStreamline(category)) {
		return false
	}
	return true
}
