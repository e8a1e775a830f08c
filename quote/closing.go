/*
closing.go - Third-party closing-cost aggregation

PURPOSE:
  Sums the third-party service line items that fold into a column's new
  estimated loan amount. Only the lender/title/government services
  participate:

    s4 underwriting, s8 processing, s9 credit report,
    s5 title/escrow, s7 state tax & recording

  Excluded on purpose:
    s1 VA funding fee       - carried on the column itself (va.go)
    s2 appraisal inspection - conditionally hidden per category.go
    s3 flood certification  - informational line, collected at closing
    s6 pay-off interest     - mirrored from the column's payoff field,
                              summing it here would double-count

  Values are captured with live digit-stripping, so each cell parses as a
  whole-dollar figure; blanks count as zero.
*/
package quote

import "github.com/shopspring/decimal"

// closingCostServiceIDs are the services summed into the loan amount.
var closingCostServiceIDs = []string{
	ServiceUnderwriting,
	ServiceProcessing,
	ServiceCreditReport,
	ServiceTitleEscrow,
	ServiceStateTax,
}

// ClosingCosts returns the closing-cost aggregate for one rate column.
func ClosingCosts(sv ServiceValues, col int) decimal.Decimal {
	total := decimal.Zero
	for _, id := range closingCostServiceIDs {
		total = total.Add(ParseWhole(sv.Value(id, col)))
	}
	return total
}
