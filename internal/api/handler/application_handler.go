package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostel-api/internal/api/metrics"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// documentFieldName is the multipart field carrying the uploaded file.
const documentFieldName = "documents"

// ApplicationHandler handles room application submissions.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /apply (multipart form + optional document).
//
// @Summary      Submit a room application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName  formData  string  true   "Applicant name"
// @Param        documents  formData  file   false  "Supporting document"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var doc *ports.DocumentUpload
	if fh, err := c.FormFile(documentFieldName); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded document")
		}
		defer f.Close()

		metrics.UploadBytes.Observe(float64(fh.Size))
		doc = &ports.DocumentUpload{Filename: fh.Filename, Size: fh.Size, Content: f}
	}

	_, err := h.service.Submit(c.Request().Context(), ports.ApplicationInput{
		FullName:        req.FullName,
		Gender:          req.Gender,
		DateOfBirth:     req.DateOfBirth,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Address:         req.Address,
		Course:          req.Course,
		GuardianName:    req.GuardianName,
		GuardianContact: req.GuardianContact,
		RoomPreference:  req.RoomPreference,
	}, doc)
	if err != nil {
		return err
	}

	metrics.ApplicationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Application submitted successfully"})
}
