package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "project-hub.com/project-hub/internal/data_models"
	"project-hub.com/project-hub/internal/http/validators"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), req.Username, req.Email)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateProfile(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	profile, err := validators.ProfileFromRequest(&req)
	if err != nil {
		return err
	}
	profile.UserID = userID

	created, err := h.profiles.Create(c.Request().Context(), profile)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetProfile(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Get(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	changes, err := validators.ProfileFromRequest(&req)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Update(c.Request().Context(), userID, changes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) ListUserNotifications(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return err
	}

	var unread bool
	if err := echo.QueryParamsBinder(c).Bool("unread", &unread).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unread must be a boolean")
	}

	notifications, err := h.notifications.ListForUser(c.Request().Context(), userID, unread)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(notifications),
		"notifications": notifications,
	})
}
