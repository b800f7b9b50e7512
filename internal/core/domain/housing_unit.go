package domain

import "time"

// Canonical borough names as stored in the housing_units collection.
// Filter input is matched case-insensitively against this set; anything
// outside it matches no records.
var CanonicalBoroughs = map[string]string{
	"queens":        "Queens",
	"brooklyn":      "Brooklyn",
	"staten island": "Staten Island",
	"manhattan":     "Manhattan",
	"bronx":         "Bronx",
}

// HousingUnit is one building/project entry from the Housing Preservation
// and Development dataset. Count fields are non-negative and default to 0.
// Date fields are pointers: the source leaves them blank for projects or
// buildings that have not completed.
type HousingUnit struct {
	UUID string `json:"uuid" bson:"uuid"`

	ProjectID              string     `json:"project_id" bson:"project_id"`
	ProjectName            string     `json:"project_name,omitempty" bson:"project_name,omitempty"`
	ProjectStartDate       *time.Time `json:"project_start_date,omitempty" bson:"project_start_date,omitempty"`
	ProjectCompletionDate  *time.Time `json:"project_completion_date,omitempty" bson:"project_completion_date,omitempty"`
	BuildingID             int64      `json:"building_id" bson:"building_id"`
	HouseNumber            string     `json:"house_number,omitempty" bson:"house_number,omitempty"`
	StreetName             string     `json:"street_name" bson:"street_name"`
	Borough                string     `json:"borough" bson:"borough"`
	Postcode               int64      `json:"postcode" bson:"postcode"`
	BBL                    int64      `json:"bbl" bson:"bbl"`
	BIN                    int64      `json:"bin" bson:"bin"`
	CommunityBoard         string     `json:"community_board,omitempty" bson:"community_board,omitempty"`
	CouncilDistrict        int64      `json:"council_district" bson:"council_district"`
	CensusTract            string     `json:"census_tract,omitempty" bson:"census_tract,omitempty"`
	NeighborhoodTabulationArea string `json:"neighborhood_tabulation_area,omitempty" bson:"neighborhood_tabulation_area,omitempty"`
	Latitude               float64    `json:"latitude" bson:"latitude"`
	Longitude              float64    `json:"longitude" bson:"longitude"`
	LatitudeInternal       float64    `json:"latitude_internal" bson:"latitude_internal"`
	LongitudeInternal      float64    `json:"longitude_internal" bson:"longitude_internal"`
	BuildingCompletionDate *time.Time `json:"building_completion_date,omitempty" bson:"building_completion_date,omitempty"`
	ConstructionType       string     `json:"reporting_construction_type" bson:"reporting_construction_type"`
	ExtendedAffordabilityStatus string `json:"extended_affordability_status,omitempty" bson:"extended_affordability_status,omitempty"`
	PrevailingWageStatus   string     `json:"prevailing_wage_status,omitempty" bson:"prevailing_wage_status,omitempty"`

	ExtremelyLowIncomeUnits int64 `json:"extremely_low_income_units" bson:"extremely_low_income_units"`
	VeryLowIncomeUnits      int64 `json:"very_low_income_units" bson:"very_low_income_units"`
	LowIncomeUnits          int64 `json:"low_income_units" bson:"low_income_units"`
	ModerateIncomeUnits     int64 `json:"moderate_income_units" bson:"moderate_income_units"`
	MiddleIncomeUnits       int64 `json:"middle_income_units" bson:"middle_income_units"`
	OtherIncomeUnits        int64 `json:"other_income_units" bson:"other_income_units"`

	StudioUnits    int64 `json:"studio_units" bson:"studio_units"`
	OneBRUnits     int64 `json:"one_br_units" bson:"one_br_units"`
	TwoBRUnits     int64 `json:"two_br_units" bson:"two_br_units"`
	ThreeBRUnits   int64 `json:"three_br_units" bson:"three_br_units"`
	FourBRUnits    int64 `json:"four_br_units" bson:"four_br_units"`
	FiveBRUnits    int64 `json:"five_br_units" bson:"five_br_units"`
	SixBRUnits     int64 `json:"six_br_units" bson:"six_br_units"`
	UnknownBRUnits int64 `json:"unknown_br_units" bson:"unknown_br_units"`

	CountedRentalUnits        int64 `json:"counted_rental_units" bson:"counted_rental_units"`
	CountedHomeownershipUnits int64 `json:"counted_homeownership_units" bson:"counted_homeownership_units"`
	AllCountedUnits           int64 `json:"all_counted_units" bson:"all_counted_units"`
	TotalUnits                int64 `json:"total_units" bson:"total_units"`
}

// BedroomUnitsSum is the sum of all bedroom-bracket counts, including
// studios and units with an unknown bedroom count.
func (h *HousingUnit) BedroomUnitsSum() int64 {
	return h.StudioUnits + h.OneBRUnits + h.TwoBRUnits + h.ThreeBRUnits +
		h.FourBRUnits + h.FiveBRUnits + h.SixBRUnits + h.UnknownBRUnits
}

// IncomeUnitsSum is the sum of all income-bracket counts.
func (h *HousingUnit) IncomeUnitsSum() int64 {
	return h.ExtremelyLowIncomeUnits + h.VeryLowIncomeUnits + h.LowIncomeUnits +
		h.ModerateIncomeUnits + h.MiddleIncomeUnits + h.OtherIncomeUnits
}
