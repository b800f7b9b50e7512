package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

const collectionHousingUnits = "housing_units"

type HousingUnitRepository struct {
	col *mongo.Collection
}

func NewHousingUnitRepository(db *mongo.Database) *HousingUnitRepository {
	return &HousingUnitRepository{col: db.Collection(collectionHousingUnits)}
}

// GetByUUID retrieves a housing unit by its uuid.
func (r *HousingUnitRepository) GetByUUID(ctx context.Context, uuid string) (*domain.HousingUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var unit domain.HousingUnit
	err := r.col.FindOne(ctx, bson.M{"uuid": uuid}).Decode(&unit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("The housing unit does not exist.")
		}
		return nil, err
	}
	return &unit, nil
}

// Filter returns the units matching every set predicate. Results are
// ordered by total_units then project_id so repeated queries are stable.
func (r *HousingUnitRepository) Filter(ctx context.Context, filter ports.HousingUnitFilter) ([]*domain.HousingUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ProjectID != nil {
		query["project_id"] = *filter.ProjectID
	}
	if filter.StreetName != nil {
		query["street_name"] = *filter.StreetName
	}
	if filter.Borough != nil {
		query["borough"] = *filter.Borough
	}
	if filter.Postcode != nil {
		query["postcode"] = *filter.Postcode
	}
	if filter.ConstructionType != nil {
		query["reporting_construction_type"] = *filter.ConstructionType
	}

	units := bson.M{}
	if filter.NumUnitsMin != nil {
		units["$gte"] = *filter.NumUnitsMin
	}
	if filter.NumUnitsMax != nil {
		units["$lte"] = *filter.NumUnitsMax
	}
	if len(units) > 0 {
		query["total_units"] = units
	}

	opts := options.Find().SetSort(bson.D{{Key: "total_units", Value: 1}, {Key: "project_id", Value: 1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*domain.HousingUnit
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Save inserts a single housing unit document.
func (r *HousingUnitRepository) Save(ctx context.Context, unit *domain.HousingUnit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, unit)
	return err
}

// BulkSave inserts a batch of units in one call. Ordered inserts: a failure
// aborts the remainder of the batch.
func (r *HousingUnitRepository) BulkSave(ctx context.Context, units []*domain.HousingUnit) error {
	if len(units) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	docs := make([]interface{}, len(units))
	for i, unit := range units {
		docs[i] = unit
	}

	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// Replace overwrites the document identified by unit.UUID.
func (r *HousingUnitRepository) Replace(ctx context.Context, unit *domain.HousingUnit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"uuid": unit.UUID}, unit)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("The housing unit does not exist.")
	}
	return nil
}

// Delete removes a unit by uuid and returns the deleted document.
func (r *HousingUnitRepository) Delete(ctx context.Context, uuid string) (*domain.HousingUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var unit domain.HousingUnit
	err := r.col.FindOneAndDelete(ctx, bson.M{"uuid": uuid}).Decode(&unit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("The housing unit does not exist.")
		}
		return nil, err
	}
	return &unit, nil
}

// TruncateTable deletes every housing unit document.
func (r *HousingUnitRepository) TruncateTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

// EnsureIndexes creates the indexes backing the lookup and filter queries.
func (r *HousingUnitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uuid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
		{Keys: bson.D{{Key: "borough", Value: 1}}},
		{Keys: bson.D{{Key: "total_units", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
