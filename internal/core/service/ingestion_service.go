package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/api/metrics"
	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// ChunkSize is the number of dataset rows bulk-persisted per batch.
const ChunkSize = 500

// DefaultDatasetID is the NYC Housing Preservation and Development
// "Housing New York Units by Building" dataset.
const DefaultDatasetID = "hg8x-zxpr"

// IngestionService triggers and executes the batched dataset ingestion
// pipeline. Apply submits the pipeline as a background job; Ingest is the
// queue-agnostic pipeline itself.
type IngestionService struct {
	repo    ports.HousingUnitRepository
	dataset ports.DatasetClient
	queue   ports.JobQueue
	logger  zerolog.Logger
}

func NewIngestionService(
	repo ports.HousingUnitRepository,
	dataset ports.DatasetClient,
	queue ports.JobQueue,
	logger zerolog.Logger,
) *IngestionService {
	return &IngestionService{repo: repo, dataset: dataset, queue: queue, logger: logger}
}

// Apply validates the dataset id, submits the ingestion pipeline to the job
// queue, and returns the job's initial status. The caller polls the task
// status endpoint for progress; the pipeline is not awaited.
func (s *IngestionService) Apply(ctx context.Context, datasetID string, resetTable bool) (*domain.TaskStatus, error) {
	if datasetID == "" {
		return nil, domain.NewInvalidArgumentError("The dataset id is not provided.")
	}

	taskID, err := s.queue.Submit(ctx, func(jobCtx context.Context) (string, error) {
		return s.Ingest(jobCtx, datasetID, resetTable)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("dataset_id", datasetID).
		Bool("reset_table", resetTable).Msg("data ingestion job submitted")

	return s.queue.Status(ctx, taskID)
}

// Ingest runs the download → truncate → map → bulk-persist pipeline and
// returns a human-readable count of inserted rows.
//
// Only the initial fetch is pipeline-fatal. Rows that fail field mapping
// are logged and skipped; ingestion is best-effort per row and applies no
// sanity-check invariants, trusting the source dataset.
func (s *IngestionService) Ingest(ctx context.Context, datasetID string, resetTable bool) (string, error) {
	rows, err := s.dataset.Fetch(ctx, datasetID)
	if err != nil {
		metrics.IngestionJobsTotal.WithLabelValues(string(domain.TaskFailed)).Inc()
		return "", domain.NewDatasetDownloadError(
			fmt.Sprintf("Failed to download the dataset id %s", datasetID), err)
	}

	if resetTable {
		// Irreversible; not transactional with the writes below.
		if err := s.repo.TruncateTable(ctx); err != nil {
			metrics.IngestionJobsTotal.WithLabelValues(string(domain.TaskFailed)).Inc()
			return "", err
		}
		s.logger.Info().Str("dataset_id", datasetID).Msg("housing units table truncated")
	}

	inserted := 0
	for _, chunk := range ports.ChunkRows(rows, ChunkSize) {
		units := make([]*domain.HousingUnit, 0, len(chunk))
		for _, row := range chunk {
			unit, err := mapRow(row)
			if err != nil {
				metrics.IngestionRowsSkippedTotal.WithLabelValues(skipReason(err)).Inc()
				s.logger.Warn().Err(err).Str("project_id", row.TextField("project_id")).
					Msg("skipping dataset row")
				continue
			}
			units = append(units, unit)
		}
		if len(units) == 0 {
			continue
		}
		if err := s.repo.BulkSave(ctx, units); err != nil {
			metrics.IngestionJobsTotal.WithLabelValues(string(domain.TaskFailed)).Inc()
			return "", err
		}
		inserted += len(units)
		metrics.IngestionRowsInsertedTotal.Add(float64(len(units)))
	}

	metrics.IngestionJobsTotal.WithLabelValues(string(domain.TaskSucceeded)).Inc()
	s.logger.Info().Str("dataset_id", datasetID).Int("rows", inserted).Msg("data ingestion finished")
	return fmt.Sprintf("Number of rows inserted: %d.", inserted), nil
}

type rowMappingError struct {
	reason string
	detail string
}

func (e *rowMappingError) Error() string { return e.detail }

func skipReason(err error) string {
	if me, ok := err.(*rowMappingError); ok {
		return me.reason
	}
	return "mapping_failed"
}

// mapRow coerces one dataset row into a HousingUnit. Columns the source
// schema marks non-null (project identity, address, construction type,
// building completion date) must be present; everything else falls back to
// its zero value.
func mapRow(row ports.DatasetRow) (*domain.HousingUnit, error) {
	for _, col := range []string{"project_id", "street_name", "borough", "reporting_construction_type"} {
		if row.TextField(col) == "" {
			return nil, &rowMappingError{reason: "missing_field", detail: "missing required column " + col}
		}
	}
	postcode := row.IntField("postcode")
	if postcode == nil {
		return nil, &rowMappingError{reason: "missing_field", detail: "missing required column postcode"}
	}

	buildingCompleted, err := row.TimeField("building_completion_date")
	if err != nil {
		return nil, &rowMappingError{reason: "bad_timestamp", detail: "building_completion_date: " + err.Error()}
	}
	if buildingCompleted == nil {
		return nil, &rowMappingError{reason: "missing_field", detail: "missing required column building_completion_date"}
	}
	projectStart, err := row.TimeField("project_start_date")
	if err != nil {
		return nil, &rowMappingError{reason: "bad_timestamp", detail: "project_start_date: " + err.Error()}
	}
	projectCompleted, err := row.TimeField("project_completion_date")
	if err != nil {
		return nil, &rowMappingError{reason: "bad_timestamp", detail: "project_completion_date: " + err.Error()}
	}

	return &domain.HousingUnit{
		UUID:                        uuid.NewString(),
		ProjectID:                   row.TextField("project_id"),
		ProjectName:                 row.TextField("project_name"),
		ProjectStartDate:            projectStart,
		ProjectCompletionDate:       projectCompleted,
		BuildingID:                  intOrZero(row, "building_id"),
		HouseNumber:                 row.TextField("house_number"),
		StreetName:                  row.TextField("street_name"),
		Borough:                     row.TextField("borough"),
		Postcode:                    *postcode,
		BBL:                         intOrZero(row, "bbl"),
		BIN:                         intOrZero(row, "bin"),
		CommunityBoard:              row.TextField("community_board"),
		CouncilDistrict:             intOrZero(row, "council_district"),
		CensusTract:                 row.TextField("census_tract"),
		NeighborhoodTabulationArea:  row.TextField("neighborhood_tabulation_area"),
		Latitude:                    floatOrZero(row, "latitude"),
		Longitude:                   floatOrZero(row, "longitude"),
		LatitudeInternal:            floatOrZero(row, "latitude_internal"),
		LongitudeInternal:           floatOrZero(row, "longitude_internal"),
		BuildingCompletionDate:      buildingCompleted,
		ConstructionType:            row.TextField("reporting_construction_type"),
		ExtendedAffordabilityStatus: row.TextField("extended_affordability_status"),
		PrevailingWageStatus:        row.TextField("prevailing_wage_status"),
		ExtremelyLowIncomeUnits:     intOrZero(row, "extremely_low_income_units"),
		VeryLowIncomeUnits:          intOrZero(row, "very_low_income_units"),
		LowIncomeUnits:              intOrZero(row, "low_income_units"),
		ModerateIncomeUnits:         intOrZero(row, "moderate_income_units"),
		MiddleIncomeUnits:           intOrZero(row, "middle_income_units"),
		OtherIncomeUnits:            intOrZero(row, "other_income_units"),
		StudioUnits:                 intOrZero(row, "studio_units"),
		OneBRUnits:                  intOrZero(row, "_1_br_units"),
		TwoBRUnits:                  intOrZero(row, "_2_br_units"),
		ThreeBRUnits:                intOrZero(row, "_3_br_units"),
		FourBRUnits:                 intOrZero(row, "_4_br_units"),
		FiveBRUnits:                 intOrZero(row, "_5_br_units"),
		SixBRUnits:                  intOrZero(row, "_6_br_units"),
		UnknownBRUnits:              intOrZero(row, "unknown_br_units"),
		CountedRentalUnits:          intOrZero(row, "counted_rental_units"),
		CountedHomeownershipUnits:   intOrZero(row, "counted_homeownership_units"),
		AllCountedUnits:             intOrZero(row, "all_counted_units"),
		TotalUnits:                  intOrZero(row, "total_units"),
	}, nil
}

func intOrZero(row ports.DatasetRow, col string) int64 {
	if v := row.IntField(col); v != nil {
		return *v
	}
	return 0
}

func floatOrZero(row ports.DatasetRow, col string) float64 {
	var f float64
	if raw := row.TextField(col); raw != "" {
		_, _ = fmt.Sscanf(raw, "%g", &f)
	}
	return f
}
