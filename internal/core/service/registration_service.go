package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// RegistrationService handles event sign-ups and the public event listing.
type RegistrationService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewRegistrationService(repo ports.EventRepository, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, log: log}
}

func (s *RegistrationService) Register(ctx context.Context, input ports.RegistrationInput) (*domain.EventRegistration, error) {
	reg := &domain.EventRegistration{
		FullName:  input.FullName,
		Email:     normalizeEmail(input.Email),
		Phone:     input.Phone,
		Gender:    input.Gender,
		EventType: input.EventType,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, reg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to persist event registration")
		return nil, err
	}

	s.log.Info().Str("registration_id", created.ID).Str("event_type", created.EventType).Msg("event registration recorded")
	return created, nil
}

func (s *RegistrationService) List(ctx context.Context) ([]*domain.EventRegistration, error) {
	return s.repo.ListAll(ctx)
}
