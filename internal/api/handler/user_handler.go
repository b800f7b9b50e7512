package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// UserHandler exposes the read-only user listing.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
	Total int            `json:"total"`
}

// List handles GET /users.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetActiveUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users, Total: len(users)})
}
