package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-hub.com/project-hub/internal/data_models"
	"project-hub.com/project-hub/internal/http/validators"
)

func (h *Handler) CreateNotification(c echo.Context) error {
	var req dto.CreateNotificationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateNotificationRequest(&req); err != nil {
		return err
	}

	n, err := h.notifications.Notify(c.Request().Context(), req.UserID, req.Message, req.Link)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	n, err := h.notifications.MarkRead(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, n)
}
