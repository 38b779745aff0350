package ports

import (
	"context"
	"io"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

// ApplicationInput carries the form fields of a hostel room application.
type ApplicationInput struct {
	FullName        string
	Gender          string
	DateOfBirth     string
	ContactNumber   string
	Email           string
	Address         string
	Course          string
	GuardianName    string
	GuardianContact string
	RoomPreference  string
}

// DocumentUpload is the supporting document attached to an application.
type DocumentUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ApplicationRepository defines persistence for room applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	ListAll(ctx context.Context) ([]*domain.Application, error)
}

// ApplicationService handles application submission.
type ApplicationService interface {
	// Submit stores the uploaded document and persists the application.
	// doc may be nil when no file was attached.
	Submit(ctx context.Context, input ApplicationInput, doc *DocumentUpload) (*domain.Application, error)
}
