package handler

import (
	"time"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// housingUnitRequest is the full-field JSON body for create and update.
// Only project_id is required; every omitted field lands at its zero value,
// which on update overwrites whatever was stored.
type housingUnitRequest struct {
	ProjectID                   string     `json:"project_id" validate:"required"`
	ProjectName                 string     `json:"project_name"`
	ProjectStartDate            *time.Time `json:"project_start_date"`
	ProjectCompletionDate       *time.Time `json:"project_completion_date"`
	BuildingID                  int64      `json:"building_id"`
	HouseNumber                 string     `json:"house_number"`
	StreetName                  string     `json:"street_name"`
	Borough                     string     `json:"borough"`
	Postcode                    int64      `json:"postcode"`
	BBL                         int64      `json:"bbl"`
	BIN                         int64      `json:"bin"`
	CommunityBoard              string     `json:"community_board"`
	CouncilDistrict             int64      `json:"council_district"`
	CensusTract                 string     `json:"census_tract"`
	NeighborhoodTabulationArea  string     `json:"neighborhood_tabulation_area"`
	Latitude                    float64    `json:"latitude"`
	Longitude                   float64    `json:"longitude"`
	LatitudeInternal            float64    `json:"latitude_internal"`
	LongitudeInternal           float64    `json:"longitude_internal"`
	BuildingCompletionDate      *time.Time `json:"building_completion_date"`
	ConstructionType            string     `json:"reporting_construction_type"`
	ExtendedAffordabilityStatus string     `json:"extended_affordability_status"`
	PrevailingWageStatus        string     `json:"prevailing_wage_status"`
	ExtremelyLowIncomeUnits     int64      `json:"extremely_low_income_units"`
	VeryLowIncomeUnits          int64      `json:"very_low_income_units"`
	LowIncomeUnits              int64      `json:"low_income_units"`
	ModerateIncomeUnits         int64      `json:"moderate_income_units"`
	MiddleIncomeUnits           int64      `json:"middle_income_units"`
	OtherIncomeUnits            int64      `json:"other_income_units"`
	StudioUnits                 int64      `json:"studio_units"`
	OneBRUnits                  int64      `json:"one_br_units"`
	TwoBRUnits                  int64      `json:"two_br_units"`
	ThreeBRUnits                int64      `json:"three_br_units"`
	FourBRUnits                 int64      `json:"four_br_units"`
	FiveBRUnits                 int64      `json:"five_br_units"`
	SixBRUnits                  int64      `json:"six_br_units"`
	UnknownBRUnits              int64      `json:"unknown_br_units"`
	CountedRentalUnits          int64      `json:"counted_rental_units"`
	CountedHomeownershipUnits   int64      `json:"counted_homeownership_units"`
	AllCountedUnits             int64      `json:"all_counted_units"`
	TotalUnits                  int64      `json:"total_units"`
}

func (r *housingUnitRequest) toBody() *ports.HousingUnitBody {
	return &ports.HousingUnitBody{
		ProjectID:                   r.ProjectID,
		ProjectName:                 r.ProjectName,
		ProjectStartDate:            r.ProjectStartDate,
		ProjectCompletionDate:       r.ProjectCompletionDate,
		BuildingID:                  r.BuildingID,
		HouseNumber:                 r.HouseNumber,
		StreetName:                  r.StreetName,
		Borough:                     r.Borough,
		Postcode:                    r.Postcode,
		BBL:                         r.BBL,
		BIN:                         r.BIN,
		CommunityBoard:              r.CommunityBoard,
		CouncilDistrict:             r.CouncilDistrict,
		CensusTract:                 r.CensusTract,
		NeighborhoodTabulationArea:  r.NeighborhoodTabulationArea,
		Latitude:                    r.Latitude,
		Longitude:                   r.Longitude,
		LatitudeInternal:            r.LatitudeInternal,
		LongitudeInternal:           r.LongitudeInternal,
		BuildingCompletionDate:      r.BuildingCompletionDate,
		ConstructionType:            r.ConstructionType,
		ExtendedAffordabilityStatus: r.ExtendedAffordabilityStatus,
		PrevailingWageStatus:        r.PrevailingWageStatus,
		ExtremelyLowIncomeUnits:     r.ExtremelyLowIncomeUnits,
		VeryLowIncomeUnits:          r.VeryLowIncomeUnits,
		LowIncomeUnits:              r.LowIncomeUnits,
		ModerateIncomeUnits:         r.ModerateIncomeUnits,
		MiddleIncomeUnits:           r.MiddleIncomeUnits,
		OtherIncomeUnits:            r.OtherIncomeUnits,
		StudioUnits:                 r.StudioUnits,
		OneBRUnits:                  r.OneBRUnits,
		TwoBRUnits:                  r.TwoBRUnits,
		ThreeBRUnits:                r.ThreeBRUnits,
		FourBRUnits:                 r.FourBRUnits,
		FiveBRUnits:                 r.FiveBRUnits,
		SixBRUnits:                  r.SixBRUnits,
		UnknownBRUnits:              r.UnknownBRUnits,
		CountedRentalUnits:          r.CountedRentalUnits,
		CountedHomeownershipUnits:   r.CountedHomeownershipUnits,
		AllCountedUnits:             r.AllCountedUnits,
		TotalUnits:                  r.TotalUnits,
	}
}

// filterQuery mirrors the GET /housing-units query parameters. Unset bounds
// default to the documented 0/1000 window.
type filterQuery struct {
	StreetName       *string `query:"street_name"`
	Borough          *string `query:"borough"`
	Postcode         *int64  `query:"postcode"`
	ConstructionType *string `query:"construction_type"`
	NumUnitsMin      *int64  `query:"num_units_min"`
	NumUnitsMax      *int64  `query:"num_units_max"`
}

const (
	defaultNumUnitsMin int64 = 0
	defaultNumUnitsMax int64 = 1000
)

func (q *filterQuery) toInput() ports.FilterHousingUnitsInput {
	input := ports.FilterHousingUnitsInput{
		StreetName:       q.StreetName,
		Borough:          q.Borough,
		Postcode:         q.Postcode,
		ConstructionType: q.ConstructionType,
		NumUnitsMin:      q.NumUnitsMin,
		NumUnitsMax:      q.NumUnitsMax,
	}
	if input.NumUnitsMin == nil {
		min := defaultNumUnitsMin
		input.NumUnitsMin = &min
	}
	if input.NumUnitsMax == nil {
		max := defaultNumUnitsMax
		input.NumUnitsMax = &max
	}
	return input
}

type filterResponse struct {
	HousingUnits []*domain.HousingUnit `json:"housing_units"`
	Total        int                   `json:"total"`
}
