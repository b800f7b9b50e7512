package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)
	return rec
}

func TestErrorHandler_DomainKinds(t *testing.T) {
	cases := []struct {
		name       string
		err        *domain.Error
		wantStatus int
	}{
		{"invalid argument", domain.NewInvalidArgumentError("The dataset id is not provided."), http.StatusBadRequest},
		{"missing argument", domain.NewMissingArgumentError("Task id is required."), http.StatusBadRequest},
		{"validation", domain.NewValidationError("The total units can't be greater than the counted rental units"), http.StatusBadRequest},
		{"dataset download", domain.NewDatasetDownloadError("Failed to download the dataset id hg8x-zxpr", errors.New("timeout")), http.StatusBadRequest},
		{"authentication", domain.NewAuthenticationError("The user does not exist."), http.StatusForbidden},
		{"not found", domain.NewNotFoundError("The housing unit does not exist."), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := renderError(t, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["Detail"] != tc.err.Message {
				t.Errorf("Detail: got %q, want %q", resp["Detail"], tc.err.Message)
			}
			if resp["Type"] != string(tc.err.Kind) {
				t.Errorf("Type: got %q, want %q", resp["Type"], tc.err.Kind)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	inner := domain.NewNotFoundError("The task does not exist.")
	rec := renderError(t, errors.Join(errors.New("status poll"), inner))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a wrapped domain error, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "project_id is required"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] != "project_id is required" {
		t.Errorf("unexpected detail: %q", resp["detail"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec := renderError(t, errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Internal causes never leak to the client.
	if resp["detail"] != "internal server error" {
		t.Errorf("unexpected detail: %q", resp["detail"])
	}
}
