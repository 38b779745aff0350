package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

type stubApplicationRepo struct {
	created []*domain.Application
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	copy := *app
	copy.ID = "app1"
	r.created = append(r.created, &copy)
	return &copy, nil
}

func (r *stubApplicationRepo) ListAll(_ context.Context) ([]*domain.Application, error) {
	return r.created, nil
}

type stubFileStore struct {
	saved map[string]string // filename → content
}

func (s *stubFileStore) Save(filename string, content io.Reader) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.saved[filename] = string(data)
	return "uploads/stored-" + filename, nil
}

func sampleInput() ports.ApplicationInput {
	return ports.ApplicationInput{
		FullName:        "Alice Example",
		Gender:          "female",
		DateOfBirth:     "2002-04-18",
		ContactNumber:   "5551234567",
		Email:           "Alice@X.com",
		Address:         "12 Main St",
		Course:          "Physics",
		GuardianName:    "Bob Example",
		GuardianContact: "5559876543",
		RoomPreference:  "double",
	}
}

func TestApplicationService_Submit_WithDocument(t *testing.T) {
	repo := &stubApplicationRepo{}
	files := &stubFileStore{}
	svc := NewApplicationService(repo, files, zerolog.Nop())

	doc := &ports.DocumentUpload{
		Filename: "id-card.pdf",
		Size:     8,
		Content:  strings.NewReader("pdfbytes"),
	}
	app, err := svc.Submit(context.Background(), sampleInput(), doc)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if files.saved["id-card.pdf"] != "pdfbytes" {
		t.Fatalf("document content not stored: %+v", files.saved)
	}
	if app.DocumentPath != "uploads/stored-id-card.pdf" {
		t.Fatalf("document path not recorded: %q", app.DocumentPath)
	}
	if app.Email != "alice@x.com" {
		t.Fatalf("email not normalised: %q", app.Email)
	}
	if app.Role != "user" {
		t.Fatalf("default role not applied: %q", app.Role)
	}
	if app.CreatedAt.IsZero() {
		t.Fatalf("creation time not set")
	}
}

func TestApplicationService_Submit_WithoutDocument(t *testing.T) {
	repo := &stubApplicationRepo{}
	svc := NewApplicationService(repo, &stubFileStore{}, zerolog.Nop())

	app, err := svc.Submit(context.Background(), sampleInput(), nil)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if app.DocumentPath != "" {
		t.Fatalf("expected empty document path, got %q", app.DocumentPath)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted application, got %d", len(repo.created))
	}
}
