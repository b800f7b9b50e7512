package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.Handler, pageSize int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{BaseURL: srv.URL, PageSize: pageSize}, zerolog.Nop())
	return client, srv
}

func TestClient_Fetch_Paginates(t *testing.T) {
	// 5 rows served with page size 2: expect offsets 0, 2, 4 and a short
	// final page to end the loop.
	total := 5
	var offsets []int

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resource/hg8x-zxpr.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("$limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("$offset"))
		offsets = append(offsets, offset)

		var page []map[string]string
		for i := offset; i < total && i < offset+limit; i++ {
			page = append(page, map[string]string{"project_id": strconv.Itoa(i)})
		}
		json.NewEncoder(w).Encode(page)
	})

	client, _ := newTestClient(t, handler, 2)

	rows, err := client.Fetch(context.Background(), "hg8x-zxpr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != total {
		t.Fatalf("expected %d rows, got %d", total, len(rows))
	}
	for i, row := range rows {
		if row.TextField("project_id") != strconv.Itoa(i) {
			t.Fatalf("row order broken at %d: %q", i, row.TextField("project_id"))
		}
	}
	if len(offsets) != 3 || offsets[0] != 0 || offsets[1] != 2 || offsets[2] != 4 {
		t.Errorf("unexpected pagination offsets: %v", offsets)
	}
}

func TestClient_Fetch_SendsAppToken(t *testing.T) {
	var gotToken string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		fmt.Fprint(w, "[]")
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, AppToken: "tok-123", PageSize: 10}, zerolog.Nop())
	if _, err := client.Fetch(context.Background(), "hg8x-zxpr"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "tok-123" {
		t.Errorf("expected app token header, got %q", gotToken)
	}
}

func TestClient_Fetch_CoercesIntegerColumns(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{
			"project_id": "44218",
			"total_units": "12",
			"postcode": "10038.0",
			"bbl": "not-a-number",
			"latitude": "40.7112"
		}]`)
	})
	client, _ := newTestClient(t, handler, 10)

	rows, err := client.Fetch(context.Background(), "hg8x-zxpr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rows[0]

	if got := row.IntField("total_units"); got == nil || *got != 12 {
		t.Errorf("total_units: got %v", got)
	}
	// Decimal strings truncate to the integer part.
	if got := row.IntField("postcode"); got == nil || *got != 10038 {
		t.Errorf("postcode: got %v", got)
	}
	// Unparseable values in integer columns coerce to null.
	if got := row.IntField("bbl"); got != nil {
		t.Errorf("bbl should be null, got %d", *got)
	}
	// Non-integer columns stay text only.
	if _, ok := row.Ints["latitude"]; ok {
		t.Error("latitude must not be coerced to an integer")
	}
	if row.TextField("latitude") != "40.7112" {
		t.Errorf("latitude text: got %q", row.TextField("latitude"))
	}
	// Raw text survives for every column, including coerced ones.
	if row.TextField("postcode") != "10038.0" {
		t.Errorf("postcode raw text: got %q", row.TextField("postcode"))
	}
}

func TestClient_Fetch_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	client, _ := newTestClient(t, handler, 10)

	if _, err := client.Fetch(context.Background(), "hg8x-zxpr"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestClient_Fetch_EmptyDatasetID(t *testing.T) {
	client := NewClient(Config{}, zerolog.Nop())
	if _, err := client.Fetch(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty dataset id")
	}
}
