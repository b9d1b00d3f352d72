package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-hub.com/project-hub/internal/data_models"
	"project-hub.com/project-hub/internal/http/validators"
	"project-hub.com/project-hub/internal/services"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	params := services.CreateProjectParams{
		Title:          req.Title,
		RoomID:         req.RoomID,
		ExcalidrawLink: req.ExcalidrawLink,
		TeamMemberIDs:  req.TeamMemberIDs,
	}
	if req.Status != "" {
		params.Status, _ = validators.ParseProjectStatus(req.Status)
	}

	project, err := h.projects.Create(c.Request().Context(), params)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(projects),
		"projects": projects,
	})
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	project, err := h.projects.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projects.Update(c.Request().Context(), id, services.UpdateProjectParams{
		Title:          req.Title,
		RoomID:         req.RoomID,
		ExcalidrawLink: req.ExcalidrawLink,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeProjectStatus answers 200 with the new log entry, or 204 when the
// project already had the requested status.
func (h *Handler) ChangeProjectStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := validators.ParseProjectStatus(req.Status)
	if err != nil {
		return err
	}

	entry, err := h.projects.ChangeStatus(c.Request().Context(), id, status)
	if err != nil {
		return fail(c, err)
	}
	if entry == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) ListProjectStatusLogs(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	logs, err := h.projects.StatusHistory(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(logs),
		"logs":  logs,
	})
}

func (h *Handler) SetProjectMembers(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.MembersRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projects.SetTeamMembers(c.Request().Context(), id, req.UserIDs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) GetWhiteboard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	board, err := h.whiteboards.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) SaveWhiteboard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.WhiteboardRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	board, err := h.whiteboards.Save(c.Request().Context(), id, req.DrawingData)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, board)
}
