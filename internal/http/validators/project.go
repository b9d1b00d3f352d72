package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"project-hub.com/project-hub/internal/constants"
	dto "project-hub.com/project-hub/internal/data_models"
)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(r.Title) > 255 {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 255 characters")
	}
	if r.Status != "" {
		if _, err := ParseProjectStatus(r.Status); err != nil {
			return err
		}
	}
	return nil
}

func ValidateUpdateProjectRequest(r *dto.UpdateProjectRequest) error {
	if len(r.Title) > 255 {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 255 characters")
	}
	if r.ExcalidrawLink != nil && len(*r.ExcalidrawLink) > 200 {
		return echo.NewHTTPError(http.StatusBadRequest, "excalidraw_link must be at most 200 characters")
	}
	return nil
}

func ParseProjectStatus(v string) (constants.ProjectStatus, error) {
	for _, s := range constants.ProjectStatuses {
		if strings.EqualFold(string(s), strings.TrimSpace(v)) {
			return s, nil
		}
	}
	return "", echo.NewHTTPError(http.StatusBadRequest, "status must be one of: Planning, In Progress, Completed")
}
