package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// HousingUnitHandler handles the housing-unit lifecycle and filter routes.
type HousingUnitHandler struct {
	service ports.HousingUnitService
}

func NewHousingUnitHandler(service ports.HousingUnitService) *HousingUnitHandler {
	return &HousingUnitHandler{service: service}
}

// Filter handles GET /housing-units.
//
// @Summary      Filter housing units
// @Tags         housing-units
// @Produce      json
// @Security     BearerAuth
// @Param        street_name        query     string  false  "Exact street name"
// @Param        borough            query     string  false  "Borough, case-insensitive"
// @Param        postcode           query     int     false  "Exact postcode"
// @Param        construction_type  query     string  false  "Exact reporting construction type"
// @Param        num_units_min      query     int     false  "Inclusive lower bound on total units"  default(0)
// @Param        num_units_max      query     int     false  "Inclusive upper bound on total units"  default(1000)
// @Success      200                {object}  filterResponse
// @Failure      400                {object}  map[string]string
// @Router       /housing-units [get]
func (h *HousingUnitHandler) Filter(c echo.Context) error {
	var q filterQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid query parameters")
	}

	result, err := h.service.Filter(c.Request().Context(), q.toInput())
	if err != nil {
		return err
	}

	units := result.HousingUnits
	if units == nil {
		// Render an empty array, not null.
		units = []*domain.HousingUnit{}
	}
	return c.JSON(http.StatusOK, filterResponse{HousingUnits: units, Total: result.Total})
}

// Get handles GET /housing-units/:id.
//
// @Summary      Retrieve a housing unit by uuid
// @Tags         housing-units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Housing unit uuid"
// @Success      200  {object}  domain.HousingUnit
// @Failure      404  {object}  map[string]string
// @Router       /housing-units/{id} [get]
func (h *HousingUnitHandler) Get(c echo.Context) error {
	unit, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Create handles POST /housing-units/.
//
// @Summary      Create a housing unit
// @Tags         housing-units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      housingUnitRequest  true  "Housing unit fields"
// @Success      201   {object}  domain.HousingUnit
// @Failure      400   {object}  map[string]string
// @Router       /housing-units/ [post]
func (h *HousingUnitHandler) Create(c echo.Context) error {
	var req housingUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	unit, err := h.service.Create(c.Request().Context(), req.toBody())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, unit)
}

// Update handles PUT /housing-units/:id. The stored record is fully
// replaced from the body; omitted fields are reset to their zero values.
//
// @Summary      Update a housing unit (full replace)
// @Tags         housing-units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Housing unit uuid"
// @Param        body  body      housingUnitRequest  true  "Housing unit fields"
// @Success      200   {object}  domain.HousingUnit
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /housing-units/{id} [put]
func (h *HousingUnitHandler) Update(c echo.Context) error {
	var req housingUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	unit, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toBody())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Delete handles DELETE /housing-units/:id and returns the deleted record.
//
// @Summary      Delete a housing unit
// @Tags         housing-units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Housing unit uuid"
// @Success      200  {object}  domain.HousingUnit
// @Failure      404  {object}  map[string]string
// @Router       /housing-units/{id} [delete]
func (h *HousingUnitHandler) Delete(c echo.Context) error {
	unit, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}
