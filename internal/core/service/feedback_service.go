package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// FeedbackService persists complaints and contact-form messages.
type FeedbackService struct {
	complaints ports.ComplaintRepository
	contacts   ports.ContactRepository
	log        zerolog.Logger
}

func NewFeedbackService(complaints ports.ComplaintRepository, contacts ports.ContactRepository, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{complaints: complaints, contacts: contacts, log: log}
}

func (s *FeedbackService) FileComplaint(ctx context.Context, input ports.ComplaintInput) (*domain.Complaint, error) {
	complaint := &domain.Complaint{
		Name:          input.Name,
		Email:         normalizeEmail(input.Email),
		ComplaintType: input.ComplaintType,
		Description:   input.Description,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.complaints.Create(ctx, complaint)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to persist complaint")
		return nil, err
	}

	s.log.Info().Str("complaint_id", created.ID).Str("type", created.ComplaintType).Msg("complaint filed")
	return created, nil
}

func (s *FeedbackService) SendContactMessage(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     normalizeEmail(input.Email),
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.contacts.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to persist contact message")
		return nil, err
	}

	s.log.Info().Str("contact_id", created.ID).Msg("contact message received")
	return created, nil
}
