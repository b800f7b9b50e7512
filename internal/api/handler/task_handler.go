package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// TaskHandler reports background job state.
type TaskHandler struct {
	service ports.TaskStatusService
}

func NewTaskHandler(service ports.TaskStatusService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Get handles GET /task-status/:task_id.
//
// @Summary      Poll a background job
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        task_id  path      string  true  "Task id returned by the ingestion trigger"
// @Success      200      {object}  domain.TaskStatus
// @Failure      404      {object}  map[string]string
// @Router       /task-status/{task_id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	status, err := h.service.GetTaskStatus(c.Request().Context(), c.Param("task_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
