package ports

import (
	"context"
	"time"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// HousingUnitBody carries all writable fields of a housing unit for the
// create and update operations. Update replaces the full record from this
// body: fields left at their zero value overwrite whatever was stored.
type HousingUnitBody struct {
	ProjectID                   string
	ProjectName                 string
	ProjectStartDate            *time.Time
	ProjectCompletionDate       *time.Time
	BuildingID                  int64
	HouseNumber                 string
	StreetName                  string
	Borough                     string
	Postcode                    int64
	BBL                         int64
	BIN                         int64
	CommunityBoard              string
	CouncilDistrict             int64
	CensusTract                 string
	NeighborhoodTabulationArea  string
	Latitude                    float64
	Longitude                   float64
	LatitudeInternal            float64
	LongitudeInternal           float64
	BuildingCompletionDate      *time.Time
	ConstructionType            string
	ExtendedAffordabilityStatus string
	PrevailingWageStatus        string
	ExtremelyLowIncomeUnits     int64
	VeryLowIncomeUnits          int64
	LowIncomeUnits              int64
	ModerateIncomeUnits         int64
	MiddleIncomeUnits           int64
	OtherIncomeUnits            int64
	StudioUnits                 int64
	OneBRUnits                  int64
	TwoBRUnits                  int64
	ThreeBRUnits                int64
	FourBRUnits                 int64
	FiveBRUnits                 int64
	SixBRUnits                  int64
	UnknownBRUnits              int64
	CountedRentalUnits          int64
	CountedHomeownershipUnits   int64
	AllCountedUnits             int64
	TotalUnits                  int64
}

// FilterHousingUnitsInput mirrors the GET /housing-units query parameters.
type FilterHousingUnitsInput struct {
	ProjectID        *string
	StreetName       *string
	Borough          *string
	Postcode         *int64
	ConstructionType *string
	NumUnitsMin      *int64
	NumUnitsMax      *int64
}

// FilterHousingUnitsResult is the filter response: the matched units and
// their count.
type FilterHousingUnitsResult struct {
	HousingUnits []*domain.HousingUnit
	Total        int
}

// HousingUnitService defines the record lifecycle and filter use cases.
type HousingUnitService interface {
	Get(ctx context.Context, uuid string) (*domain.HousingUnit, error)
	Create(ctx context.Context, body *HousingUnitBody) (*domain.HousingUnit, error)
	Update(ctx context.Context, uuid string, body *HousingUnitBody) (*domain.HousingUnit, error)
	Delete(ctx context.Context, uuid string) (*domain.HousingUnit, error)
	Filter(ctx context.Context, input FilterHousingUnitsInput) (*FilterHousingUnitsResult, error)
}
