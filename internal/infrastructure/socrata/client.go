// Package socrata implements the dataset client against the Socrata Open
// Data API (SODA). Rows are fetched page by page and integer columns are
// coerced to nullable integers before being handed to the ingestion
// pipeline.
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

const (
	defaultBaseURL  = "https://data.cityofnewyork.us"
	defaultPageSize = 10000
	defaultTimeout  = 30 * time.Second
)

// Config captures the settings for reaching the Socrata API.
type Config struct {
	BaseURL  string
	AppToken string // optional; unauthenticated requests are throttled harder
	PageSize int
	Timeout  time.Duration
}

// Client is the HTTP dataset client. It satisfies ports.DatasetClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appToken   string
	pageSize   int
	log        zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		appToken:   cfg.AppToken,
		pageSize:   pageSize,
		log:        log,
	}
}

// Fetch downloads every row of the dataset, paging with $limit/$offset
// until a short page signals the end.
func (c *Client) Fetch(ctx context.Context, datasetID string) ([]ports.DatasetRow, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("socrata: dataset id is empty")
	}

	var rows []ports.DatasetRow
	for offset := 0; ; offset += c.pageSize {
		page, err := c.fetchPage(ctx, datasetID, offset)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page...)
		if len(page) < c.pageSize {
			break
		}
	}

	c.log.Info().Str("dataset_id", datasetID).Int("rows", len(rows)).Msg("dataset downloaded")
	return rows, nil
}

func (c *Client) fetchPage(ctx context.Context, datasetID string, offset int) ([]ports.DatasetRow, error) {
	endpoint := fmt.Sprintf("%s/resource/%s.json", c.baseURL, url.PathEscape(datasetID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("socrata: build request: %w", err)
	}
	q := req.URL.Query()
	q.Set("$limit", strconv.Itoa(c.pageSize))
	q.Set("$offset", strconv.Itoa(offset))
	req.URL.RawQuery = q.Encode()
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("socrata: fetch %s: %w", datasetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("socrata: fetch %s: unexpected status %d", datasetID, resp.StatusCode)
	}

	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("socrata: decode %s: %w", datasetID, err)
	}

	rows := make([]ports.DatasetRow, 0, len(raw))
	for _, record := range raw {
		rows = append(rows, coerceRow(record))
	}
	return rows, nil
}

// coerceRow applies the declared column types: integer columns become
// nullable integers (blank, NaN, or non-numeric values coerce to null),
// everything else is kept as text.
func coerceRow(record map[string]json.RawMessage) ports.DatasetRow {
	row := ports.DatasetRow{
		Text: make(map[string]string, len(record)),
		Ints: make(map[string]*int64),
	}
	for col, raw := range record {
		row.Text[col] = rawToString(raw)
		if _, ok := integerColumns[col]; ok {
			row.Ints[col] = toNullableInt(row.Text[col])
		}
	}
	return row
}

func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

func toNullableInt(s string) *int64 {
	if s == "" {
		return nil
	}
	// The source serves counts as decimal strings ("5", sometimes "5.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int64(f)
	return &n
}
