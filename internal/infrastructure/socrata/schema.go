package socrata

// integerColumns lists the dataset columns coerced to nullable integers at
// fetch time. Every other column stays as text; timestamp columns are
// parsed lazily by the row accessors.
var integerColumns = map[string]struct{}{
	"building_id":                 {},
	"postcode":                    {},
	"bbl":                         {},
	"bin":                         {},
	"council_district":            {},
	"extremely_low_income_units":  {},
	"very_low_income_units":       {},
	"low_income_units":            {},
	"moderate_income_units":       {},
	"middle_income_units":         {},
	"other_income_units":          {},
	"studio_units":                {},
	"_1_br_units":                 {},
	"_2_br_units":                 {},
	"_3_br_units":                 {},
	"_4_br_units":                 {},
	"_5_br_units":                 {},
	"_6_br_units":                 {},
	"unknown_br_units":            {},
	"counted_rental_units":        {},
	"counted_homeownership_units": {},
	"all_counted_units":           {},
	"total_units":                 {},
}
