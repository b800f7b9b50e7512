package ports

import (
	"context"
	"time"
)

// DatasetRow is one fetched row after column-type coercion: text and date
// columns remain strings, integer columns become nullable integers.
type DatasetRow struct {
	Text map[string]string
	Ints map[string]*int64
}

// TextField returns the raw text value for col, or "" when absent.
func (r DatasetRow) TextField(col string) string { return r.Text[col] }

// IntField returns the coerced integer for col, or nil when the source
// value was blank or not numeric.
func (r DatasetRow) IntField(col string) *int64 { return r.Ints[col] }

// TimeField parses the source's floating-timestamp representation for col.
// Returns nil for a blank value and an error for a malformed one.
func (r DatasetRow) TimeField(col string) (*time.Time, error) {
	raw := r.Text[col]
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			ts = ts.UTC()
			return &ts, nil
		}
	}
	return nil, &time.ParseError{Layout: "2006-01-02T15:04:05.000", Value: raw}
}

// ChunkRows splits rows into non-overlapping, order-preserving batches of
// at most size rows; the last chunk may be shorter. The result is finite
// and safe to iterate any number of times.
func ChunkRows(rows []DatasetRow, size int) [][]DatasetRow {
	if size <= 0 || len(rows) == 0 {
		return nil
	}
	chunks := make([][]DatasetRow, 0, (len(rows)+size-1)/size)
	for pos := 0; pos < len(rows); pos += size {
		end := pos + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[pos:end])
	}
	return chunks
}

// DatasetClient fetches tabular rows from the external open-data API.
type DatasetClient interface {
	// Fetch downloads the full dataset. The ingestion pipeline wraps any
	// failure in a DatasetDownloadError.
	Fetch(ctx context.Context, datasetID string) ([]DatasetRow, error)
}
