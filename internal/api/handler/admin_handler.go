package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// AdminHandler serves raw resource listings for the admin dashboard.
// Routes using it are gated by CookieAuth + AdminOnly.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListResource handles GET /admin/:resource.
//
// @Summary      List all rows of an admin resource
// @Tags         admin
// @Produce      json
// @Param        resource  path  string  true  "users | applications | complaints | contacts | events"
// @Success      200  {array}   object
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/{resource} [get]
func (h *AdminHandler) ListResource(c echo.Context) error {
	rows, err := h.service.ListResource(c.Request().Context(), c.Param("resource"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
