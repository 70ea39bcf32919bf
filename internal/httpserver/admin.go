package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/webstore/internal/logging"
	"github.com/Skotchmaster/webstore/internal/repo"
	"github.com/labstack/echo/v4"
)

type AdminHTTP struct {
	Repo *repo.GormRepo
}

// Stats godoc
// @Summary Row counts per table, admin only
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 403 {object} echo.HTTPError
// @Security BasicAuth
// @Router /admin/stats [get]
func (h *AdminHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.stats")

	products, err := h.Repo.CountProducts(ctx)
	if err != nil {
		l.Error("admin_stats_error", "status", 500, "reason", "cannot count products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count products")
	}

	users, err := h.Repo.CountUsers(ctx)
	if err != nil {
		l.Error("admin_stats_error", "status", 500, "reason", "cannot count users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count users")
	}

	return c.JSON(http.StatusOK, map[string]int64{
		"products": products,
		"users":    users,
	})
}
