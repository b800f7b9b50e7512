package domain

import "strings"

// Sanity check violation texts. Kept as constants because the aggregated
// ValidationError message is part of the API contract.
const (
	msgTotalVsRental        = "The total units can't be greater than the counted rental units"
	msgBedroomVsTotal       = "The sum of the bedroom units can't be greater than the total units"
	msgBedroomVsAllCounted  = "The sum of the bedroom units must be equal to the all counted units"
	msgBedroomVsOwnership   = "The sum of the bedroom units can't be smaller than the counted homeownership units"
	msgIncomeVsBedroom      = "The sum of the income units must be equal to the sum of the bedroom units"
	msgIncomeVsTotal        = "The sum of the income units can't be greater than the total units"
	msgIncomeVsAllCounted   = "The sum of the income units must be equal to the all counted units"
	msgIncomeVsOwnership    = "The sum of the income units can't be smaller than the counted homeownership units"
)

// SanityCheck verifies the arithmetic invariants across a housing unit's
// sub-counts before it is persisted. All eight checks run unconditionally so
// that a single ValidationError reports every violation at once, joined by
// ", ". A nil record yields a MissingArgumentError.
//
// Ingested rows bypass this check: ingestion trusts the source dataset.
func SanityCheck(h *HousingUnit) error {
	if h == nil {
		return NewMissingArgumentError("The housing unit is not provided.")
	}

	bedroomSum := h.BedroomUnitsSum()
	incomeSum := h.IncomeUnitsSum()

	var violations []string
	if h.TotalUnits < h.CountedRentalUnits {
		violations = append(violations, msgTotalVsRental)
	}
	if bedroomSum > h.TotalUnits {
		violations = append(violations, msgBedroomVsTotal)
	}
	if bedroomSum != h.AllCountedUnits {
		violations = append(violations, msgBedroomVsAllCounted)
	}
	if bedroomSum < h.CountedHomeownershipUnits {
		violations = append(violations, msgBedroomVsOwnership)
	}
	if incomeSum != bedroomSum {
		violations = append(violations, msgIncomeVsBedroom)
	}
	if incomeSum > h.TotalUnits {
		violations = append(violations, msgIncomeVsTotal)
	}
	if incomeSum != h.AllCountedUnits {
		violations = append(violations, msgIncomeVsAllCounted)
	}
	if incomeSum < h.CountedHomeownershipUnits {
		violations = append(violations, msgIncomeVsOwnership)
	}

	if len(violations) > 0 {
		return NewValidationError(strings.Join(violations, ", "))
	}
	return nil
}
