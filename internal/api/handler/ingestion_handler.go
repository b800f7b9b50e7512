package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// IngestionHandler triggers the background dataset ingestion job.
type IngestionHandler struct {
	service   ports.IngestionService
	datasetID string
}

// NewIngestionHandler wires the handler with the dataset id used when the
// request body omits one.
func NewIngestionHandler(service ports.IngestionService, defaultDatasetID string) *IngestionHandler {
	return &IngestionHandler{service: service, datasetID: defaultDatasetID}
}

type ingestionRequest struct {
	DatasetID string `json:"dataset_id"`
	// ResetTable is a pointer so an omitted flag is distinguishable from an
	// explicit false: the default is truncate-and-reload.
	ResetTable *bool `json:"reset_table"`
}

// Apply handles POST /housing-units/data-ingestion. The pipeline runs in
// the background; the caller gets the task status to poll.
//
// @Summary      Trigger the dataset ingestion pipeline
// @Tags         housing-units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ingestionRequest  false  "Dataset id and reset flag"
// @Success      202   {object}  domain.TaskStatus
// @Failure      400   {object}  map[string]string
// @Router       /housing-units/data-ingestion [post]
func (h *IngestionHandler) Apply(c echo.Context) error {
	var req ingestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.DatasetID == "" {
		req.DatasetID = h.datasetID
	}
	resetTable := true
	if req.ResetTable != nil {
		resetTable = *req.ResetTable
	}

	status, err := h.service.Apply(c.Request().Context(), req.DatasetID, resetTable)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, status)
}
