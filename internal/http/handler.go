package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "project-hub.com/project-hub/internal/errors"
	"project-hub.com/project-hub/internal/logging"
	"project-hub.com/project-hub/internal/services"
)

type Handler struct {
	users         *services.UserService
	profiles      *services.ProfileService
	projects      *services.ProjectService
	tasks         *services.TaskService
	whiteboards   *services.WhiteboardService
	notifications *services.NotificationService
}

type Services struct {
	Users         *services.UserService
	Profiles      *services.ProfileService
	Projects      *services.ProjectService
	Tasks         *services.TaskService
	Whiteboards   *services.WhiteboardService
	Notifications *services.NotificationService
}

func NewHandler(s Services) *Handler {
	return &Handler{
		users:         s.Users,
		profiles:      s.Profiles,
		projects:      s.Projects,
		tasks:         s.Tasks,
		whiteboards:   s.Whiteboards,
		notifications: s.Notifications,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// fail turns a service error into an HTTP error. Unexpected errors are
// logged and reported as a bare 500.
func fail(c echo.Context, err error) error {
	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logging.Logger.WithFields(logging.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Errorf("request failed: %v", err)
	}
	return echo.NewHTTPError(code, apperrors.Message(err))
}

func bind(c echo.Context, dest interface{}) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	return nil
}

func pathID(c echo.Context) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint("id", &id).BindError(); err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
