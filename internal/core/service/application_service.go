package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// defaultApplicantRole is assigned to every submitted application.
const defaultApplicantRole = "user"

// FileStore abstracts where uploaded documents end up (local disk in the
// default deployment).
type FileStore interface {
	// Save writes the content under a generated name derived from filename's
	// extension and returns the stored path.
	Save(filename string, content io.Reader) (string, error)
}

// ApplicationService persists room applications and their documents.
type ApplicationService struct {
	repo  ports.ApplicationRepository
	files FileStore
	log   zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, files FileStore, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, files: files, log: log}
}

func (s *ApplicationService) Submit(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error) {
	app := &domain.Application{
		FullName:        input.FullName,
		Gender:          input.Gender,
		DateOfBirth:     input.DateOfBirth,
		ContactNumber:   input.ContactNumber,
		Email:           normalizeEmail(input.Email),
		Address:         input.Address,
		Course:          input.Course,
		GuardianName:    input.GuardianName,
		GuardianContact: input.GuardianContact,
		RoomPreference:  input.RoomPreference,
		Role:            defaultApplicantRole,
		CreatedAt:       time.Now().UTC(),
	}

	if doc != nil {
		path, err := s.files.Save(doc.Filename, doc.Content)
		if err != nil {
			s.log.Error().Err(err).Str("filename", doc.Filename).Msg("failed to store application document")
			return nil, err
		}
		app.DocumentPath = path
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to persist application")
		return nil, err
	}

	s.log.Info().Str("application_id", created.ID).Str("room_preference", created.RoomPreference).Msg("application submitted")
	return created, nil
}
