package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"project-hub.com/project-hub/internal/admin"
)

// AdminProfiles lists profiles sorted by the user's email. order=-email
// reverses the sort.
func (h *Handler) AdminProfiles(c echo.Context) error {
	var emailDesc bool
	switch c.QueryParam("order") {
	case "", "email":
	case "-email":
		emailDesc = true
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "order must be email or -email")
	}

	profiles, err := h.profiles.List(c.Request().Context(), emailDesc)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, admin.ProfileRows(profiles))
}

func (h *Handler) AdminProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, admin.ProjectRows(projects))
}
