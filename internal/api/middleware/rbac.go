package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireGroups restricts a route to callers whose group claim is one of
// the allowed user groups.
func RequireGroups(allowedGroups ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedGroups))
	for _, g := range allowedGroups {
		allowed[g] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			group, _ := c.Get("group").(string)
			if _, ok := allowed[group]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"detail": "forbidden"})
			}
			return next(c)
		}
	}
}
