package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hostelhub/hostel-api/internal/core/ports"
)

func TestFeedbackService_FileComplaint(t *testing.T) {
	complaints := &stubComplaintRepo{}
	svc := NewFeedbackService(complaints, &stubContactRepo{}, zerolog.Nop())

	c, err := svc.FileComplaint(context.Background(), ports.ComplaintInput{
		Name:          "Alice",
		Email:         "Alice@X.com",
		ComplaintType: "plumbing",
		Description:   "leaking tap in room 204",
	})
	if err != nil {
		t.Fatalf("FileComplaint returned error: %v", err)
	}
	if c.Email != "alice@x.com" {
		t.Fatalf("email not normalised: %q", c.Email)
	}
	if len(complaints.complaints) != 1 {
		t.Fatalf("complaint not persisted")
	}
}

func TestFeedbackService_SendContactMessage(t *testing.T) {
	contacts := &stubContactRepo{}
	svc := NewFeedbackService(&stubComplaintRepo{}, contacts, zerolog.Nop())

	m, err := svc.SendContactMessage(context.Background(), ports.ContactInput{
		Name:    "Bob",
		Email:   "bob@x.com",
		Message: "do you have vacancies in July?",
	})
	if err != nil {
		t.Fatalf("SendContactMessage returned error: %v", err)
	}
	if m.CreatedAt.IsZero() {
		t.Fatalf("creation time not set")
	}
	if len(contacts.msgs) != 1 {
		t.Fatalf("message not persisted")
	}
}
