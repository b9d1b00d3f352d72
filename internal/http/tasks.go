package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-hub.com/project-hub/internal/data_models"
	"project-hub.com/project-hub/internal/http/validators"
	"project-hub.com/project-hub/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	dates, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return err
	}

	params := services.CreateTaskParams{
		ProjectID:   projectID,
		Title:       req.Title,
		StartDate:   dates.Start,
		EndDate:     dates.End,
		AssigneeIDs: req.AssigneeIDs,
	}
	if req.Status != "" {
		params.Status, _ = validators.ParseTaskStatus(req.Status)
	}

	task, err := h.tasks.Create(c.Request().Context(), params)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListProjectTasks(c echo.Context) error {
	projectID, err := pathID(c)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListForProject(c.Request().Context(), projectID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	dates, err := validators.ValidateUpdateTaskRequest(&req)
	if err != nil {
		return err
	}

	task, err := h.tasks.Update(c.Request().Context(), id, services.UpdateTaskParams{
		Title:     req.Title,
		StartDate: dates.Start,
		EndDate:   dates.End,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ChangeTaskStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := validators.ParseTaskStatus(req.Status)
	if err != nil {
		return err
	}

	task, err := h.tasks.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) SetTaskAssignees(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.MembersRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.tasks.SetAssignees(c.Request().Context(), id, req.UserIDs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
