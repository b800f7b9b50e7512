package ports

import (
	"context"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// HousingUnitFilter carries the optional predicates for the filter query.
// Nil pointer fields impose no constraint; set fields combine with AND.
// Borough is expected in canonical casing by the time it reaches the store
// (the service layer maps case-insensitive input).
type HousingUnitFilter struct {
	ProjectID        *string
	StreetName       *string // exact match
	Borough          *string // canonical casing, exact match
	Postcode         *int64  // exact match
	ConstructionType *string // exact match
	NumUnitsMin      *int64  // inclusive lower bound on total_units
	NumUnitsMax      *int64  // inclusive upper bound on total_units
}

// HousingUnitRepository defines persistence operations for housing units.
// Each call wraps its own transaction against the backing store; no
// cross-call atomicity is promised.
type HousingUnitRepository interface {
	// GetByUUID returns the unit or a NotFoundError.
	GetByUUID(ctx context.Context, uuid string) (*domain.HousingUnit, error)
	Filter(ctx context.Context, filter HousingUnitFilter) ([]*domain.HousingUnit, error)
	Save(ctx context.Context, unit *domain.HousingUnit) error
	// BulkSave persists a batch as one unit. Used by the ingestion pipeline;
	// no sanity checks are applied here.
	BulkSave(ctx context.Context, units []*domain.HousingUnit) error
	// Replace overwrites the full document identified by unit.UUID.
	Replace(ctx context.Context, unit *domain.HousingUnit) error
	// Delete removes the unit and returns the deleted record, or a NotFoundError.
	Delete(ctx context.Context, uuid string) (*domain.HousingUnit, error)
	// TruncateTable removes every housing unit. Irreversible; not
	// transactional with subsequent writes.
	TruncateTable(ctx context.Context) error
}
