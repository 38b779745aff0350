package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostel-api/internal/api/metrics"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// EventHandler handles event registration and the public event listing.
type EventHandler struct {
	service ports.RegistrationService
}

func NewEventHandler(service ports.RegistrationService) *EventHandler {
	return &EventHandler{service: service}
}

// Register handles POST /register-event.
//
// @Summary      Register for a hostel event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      registerEventRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register-event [post]
func (h *EventHandler) Register(c echo.Context) error {
	var req registerEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Register(c.Request().Context(), ports.RegistrationInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Gender:    req.Gender,
		EventType: req.EventType,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.EventRegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Registration successful"})
}

// List handles GET /events — all registrations, newest first.
//
// @Summary      List event registrations
// @Tags         events
// @Produce      json
// @Success      200  {array}  domain.EventRegistration
// @Failure      500  {object}  messageResponse
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	regs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}
