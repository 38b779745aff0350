package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostel-api/internal/api/metrics"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// FeedbackHandler handles the complaint and contact form endpoints.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// FileComplaint handles POST /api/complaints.
//
// @Summary      File a complaint
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      complaintRequest  true  "Complaint details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/complaints [post]
func (h *FeedbackHandler) FileComplaint(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.FileComplaint(c.Request().Context(), ports.ComplaintInput{
		Name:          req.Name,
		Email:         req.Email,
		ComplaintType: req.ComplaintType,
		Description:   req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ComplaintsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Complaint submitted successfully"})
}

// SendContactMessage handles POST /api/contact.
//
// @Summary      Send a contact message
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/contact [post]
func (h *FeedbackHandler) SendContactMessage(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.SendContactMessage(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Message sent successfully"})
}
