package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Skotchmaster/webstore/internal/logging"
	"github.com/Skotchmaster/webstore/internal/service"
	"github.com/Skotchmaster/webstore/internal/transport"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserHTTP struct {
	Svc *service.UserService
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} transport.UserDTO
// @Security BasicAuth
// @Router /users [get]
func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	items, err := h.Svc.GetUsers(ctx)
	if err != nil {
		l.Error("get_users_error", "status", 500, "reason", "cannot get users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get users")
	}

	return c.JSON(http.StatusOK, items)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} transport.UserDTO
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /users/{id} [get]
func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_user_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	user, err := h.Svc.GetUser(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_user_failed", "status", 404, "reason", "user with this id dont exist")
			return echo.NewHTTPError(http.StatusNotFound, "user with this id dont exist")
		}
		l.Error("get_user_failed", "status", 500, "reason", "cannot get user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user")
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserByUsername godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} transport.UserDTO
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /users/username/{username} [get]
func (h *UserHTTP) GetUserByUsername(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user_by_username")

	user, err := h.Svc.GetUserByUsername(ctx, c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_user_failed", "status", 404, "reason", "user with this username dont exist")
			return echo.NewHTTPError(http.StatusNotFound, "user with this username dont exist")
		}
		l.Error("get_user_failed", "status", 500, "reason", "cannot get user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user")
	}

	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body transport.CreateUserRequest true "User to create"
// @Success 201 {object} transport.UserDTO
// @Failure 400 {object} echo.HTTPError
// @Security BasicAuth
// @Router /users [post]
func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			l.Warn("user_create_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("user_create_error", "status", 500, "reason", "cannot add user to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add user to db")
	}

	l.Info("create_user_success", "id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

// UpdateUser godoc
// @Summary Replace a user's mutable fields, password excluded
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body transport.UserDTO true "Updated user"
// @Success 200 {object} transport.UserDTO
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /users/{id} [put]
func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.UserDTO
	if err := c.Bind(&req); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.Svc.UpdateUser(ctx, uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_update_error", "status", 404, "reason", "cannot find user in db")
			return echo.NewHTTPError(http.StatusNotFound, "cannot find user in db")
		}
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			l.Warn("user_update_error", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("user_update_error", "status", 500, "reason", "cannot update user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update user")
	}

	l.Info("update_user_success", "id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Security BasicAuth
// @Router /users/{id} [delete]
func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("user_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteUser(ctx, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_delete_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("user_delete_error", "status", 500, "reason", "cannot delete user from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete user from db")
	}

	l.Info("delete_user_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
