package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"project-hub.com/project-hub/internal/constants"
	dto "project-hub.com/project-hub/internal/data_models"
)

const DateLayout = "2006-01-02"

type TaskDates struct {
	Start time.Time
	End   time.Time
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (TaskDates, error) {
	if strings.TrimSpace(r.Title) == "" {
		return TaskDates{}, echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.StartDate == "" || r.EndDate == "" {
		return TaskDates{}, echo.NewHTTPError(http.StatusBadRequest, "start_date and end_date are required")
	}
	if r.Status != "" {
		if _, err := ParseTaskStatus(r.Status); err != nil {
			return TaskDates{}, err
		}
	}
	return parseDates(r.StartDate, r.EndDate)
}

// ValidateUpdateTaskRequest parses whichever dates are present; missing ones
// stay zero.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (TaskDates, error) {
	return parseDates(r.StartDate, r.EndDate)
}

func ParseTaskStatus(v string) (constants.TaskStatus, error) {
	s, ok := constants.ParseTaskStatus(v)
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "status must be one of: Backlog, Doing, On Hold, Done, Unfinished")
	}
	return s, nil
}

func parseDates(start, end string) (TaskDates, error) {
	var dates TaskDates
	var err error
	if start != "" {
		if dates.Start, err = time.Parse(DateLayout, start); err != nil {
			return TaskDates{}, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
	}
	if end != "" {
		if dates.End, err = time.Parse(DateLayout, end); err != nil {
			return TaskDates{}, echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
	}
	return dates, nil
}
