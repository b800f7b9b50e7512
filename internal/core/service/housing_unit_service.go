package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/api/metrics"
	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

const invalidNumUnitsMessage = "The provided number of maximum units " +
	"can't be smaller than the number of minimum units"

// HousingUnitService implements the record lifecycle (create, retrieve,
// update, delete) and the filter query.
type HousingUnitService struct {
	repo   ports.HousingUnitRepository
	logger zerolog.Logger
}

func NewHousingUnitService(repo ports.HousingUnitRepository, logger zerolog.Logger) *HousingUnitService {
	return &HousingUnitService{repo: repo, logger: logger}
}

// Get retrieves a housing unit by uuid.
func (s *HousingUnitService) Get(ctx context.Context, unitUUID string) (*domain.HousingUnit, error) {
	if unitUUID == "" {
		return nil, domain.NewMissingArgumentError("The housing unit uuid is not provided.")
	}
	return s.repo.GetByUUID(ctx, unitUUID)
}

// Create builds a housing unit from the input body, runs the sanity checks,
// and persists it. The generated uuid is returned on the stored record.
func (s *HousingUnitService) Create(ctx context.Context, body *ports.HousingUnitBody) (*domain.HousingUnit, error) {
	if body == nil {
		return nil, domain.NewMissingArgumentError("The housing unit body is not provided.")
	}

	unit := unitFromBody(body)
	unit.UUID = uuid.NewString()

	if err := domain.SanityCheck(unit); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, unit); err != nil {
		s.logger.Error().Err(err).Str("project_id", unit.ProjectID).Msg("failed to save housing unit")
		return nil, err
	}

	metrics.UnitsCreatedTotal.WithLabelValues(unit.Borough).Inc()
	s.logger.Info().Str("uuid", unit.UUID).Str("project_id", unit.ProjectID).Msg("housing unit created")
	return unit, nil
}

// Update replaces ALL fields of an existing unit from the input body (full
// overwrite, not a partial patch), re-runs the sanity checks, and persists.
func (s *HousingUnitService) Update(ctx context.Context, unitUUID string, body *ports.HousingUnitBody) (*domain.HousingUnit, error) {
	if unitUUID == "" {
		return nil, domain.NewMissingArgumentError("The housing unit uuid is not provided.")
	}
	if body == nil {
		return nil, domain.NewMissingArgumentError("The housing unit body is not provided.")
	}

	existing, err := s.repo.GetByUUID(ctx, unitUUID)
	if err != nil {
		return nil, err
	}

	unit := unitFromBody(body)
	unit.UUID = existing.UUID

	if err := domain.SanityCheck(unit); err != nil {
		return nil, err
	}
	if err := s.repo.Replace(ctx, unit); err != nil {
		s.logger.Error().Err(err).Str("uuid", unit.UUID).Msg("failed to replace housing unit")
		return nil, err
	}

	s.logger.Info().Str("uuid", unit.UUID).Msg("housing unit updated")
	return unit, nil
}

// Delete removes a housing unit by uuid and returns the deleted record.
func (s *HousingUnitService) Delete(ctx context.Context, unitUUID string) (*domain.HousingUnit, error) {
	if unitUUID == "" {
		return nil, domain.NewMissingArgumentError("The housing unit uuid is not provided.")
	}

	deleted, err := s.repo.Delete(ctx, unitUUID)
	if err != nil {
		return nil, err
	}

	metrics.UnitsDeletedTotal.Inc()
	s.logger.Info().Str("uuid", unitUUID).Msg("housing unit deleted")
	return deleted, nil
}

// Filter translates the optional predicates into a store query. Range
// sanity on the numeric bounds is enforced here, not in the store.
func (s *HousingUnitService) Filter(ctx context.Context, input ports.FilterHousingUnitsInput) (*ports.FilterHousingUnitsResult, error) {
	if input.NumUnitsMin != nil && input.NumUnitsMax != nil && *input.NumUnitsMax < *input.NumUnitsMin {
		return nil, domain.NewValidationError(invalidNumUnitsMessage)
	}

	filter := ports.HousingUnitFilter{
		ProjectID:        input.ProjectID,
		StreetName:       input.StreetName,
		Borough:          canonicalBorough(input.Borough),
		Postcode:         input.Postcode,
		ConstructionType: input.ConstructionType,
		NumUnitsMin:      input.NumUnitsMin,
		NumUnitsMax:      input.NumUnitsMax,
	}

	units, err := s.repo.Filter(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("housing unit filter query failed")
		return nil, err
	}

	return &ports.FilterHousingUnitsResult{HousingUnits: units, Total: len(units)}, nil
}

// canonicalBorough maps case-insensitive borough input to the canonical
// casing stored in the table. Unrecognized names pass through verbatim and
// match no records, since the store only holds canonical values.
func canonicalBorough(borough *string) *string {
	if borough == nil {
		return nil
	}
	if canonical, ok := domain.CanonicalBoroughs[strings.ToLower(*borough)]; ok {
		return &canonical
	}
	return borough
}

func unitFromBody(body *ports.HousingUnitBody) *domain.HousingUnit {
	return &domain.HousingUnit{
		ProjectID:                   body.ProjectID,
		ProjectName:                 body.ProjectName,
		ProjectStartDate:            body.ProjectStartDate,
		ProjectCompletionDate:       body.ProjectCompletionDate,
		BuildingID:                  body.BuildingID,
		HouseNumber:                 body.HouseNumber,
		StreetName:                  body.StreetName,
		Borough:                     body.Borough,
		Postcode:                    body.Postcode,
		BBL:                         body.BBL,
		BIN:                         body.BIN,
		CommunityBoard:              body.CommunityBoard,
		CouncilDistrict:             body.CouncilDistrict,
		CensusTract:                 body.CensusTract,
		NeighborhoodTabulationArea:  body.NeighborhoodTabulationArea,
		Latitude:                    body.Latitude,
		Longitude:                   body.Longitude,
		LatitudeInternal:            body.LatitudeInternal,
		LongitudeInternal:           body.LongitudeInternal,
		BuildingCompletionDate:      body.BuildingCompletionDate,
		ConstructionType:            body.ConstructionType,
		ExtendedAffordabilityStatus: body.ExtendedAffordabilityStatus,
		PrevailingWageStatus:        body.PrevailingWageStatus,
		ExtremelyLowIncomeUnits:     body.ExtremelyLowIncomeUnits,
		VeryLowIncomeUnits:          body.VeryLowIncomeUnits,
		LowIncomeUnits:              body.LowIncomeUnits,
		ModerateIncomeUnits:         body.ModerateIncomeUnits,
		MiddleIncomeUnits:           body.MiddleIncomeUnits,
		OtherIncomeUnits:            body.OtherIncomeUnits,
		StudioUnits:                 body.StudioUnits,
		OneBRUnits:                  body.OneBRUnits,
		TwoBRUnits:                  body.TwoBRUnits,
		ThreeBRUnits:                body.ThreeBRUnits,
		FourBRUnits:                 body.FourBRUnits,
		FiveBRUnits:                 body.FiveBRUnits,
		SixBRUnits:                  body.SixBRUnits,
		UnknownBRUnits:              body.UnknownBRUnits,
		CountedRentalUnits:          body.CountedRentalUnits,
		CountedHomeownershipUnits:   body.CountedHomeownershipUnits,
		AllCountedUnits:             body.AllCountedUnits,
		TotalUnits:                  body.TotalUnits,
	}
}
