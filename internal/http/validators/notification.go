package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "project-hub.com/project-hub/internal/data_models"
)

func ValidateCreateNotificationRequest(r *dto.CreateNotificationRequest) error {
	if r.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if r.Link != nil && len(*r.Link) > 200 {
		return echo.NewHTTPError(http.StatusBadRequest, "link must be at most 200 characters")
	}
	return nil
}
