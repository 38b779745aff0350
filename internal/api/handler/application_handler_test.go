package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

type stubApplicationService struct {
	submitFn func(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error) {
	return s.submitFn(ctx, input, doc)
}

func applyFormFields() map[string]string {
	return map[string]string{
		"fullName":        "Alice Example",
		"gender":          "female",
		"dob":             "2002-04-18",
		"contactNumber":   "5551234567",
		"email":           "alice@x.com",
		"address":         "12 Main St",
		"course":          "Physics",
		"guardianName":    "Bob Example",
		"guardianContact": "5559876543",
		"roomPreference":  "double",
	}
}

func newMultipartContext(t *testing.T, fields map[string]string, withFile bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withFile {
		fw, err := w.CreateFormFile(documentFieldName, "id-card.pdf")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("pdfbytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/apply", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestApplicationHandler_Apply_WithDocument(t *testing.T) {
	stub := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error) {
			if input.FullName != "Alice Example" || input.RoomPreference != "double" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if doc == nil {
				t.Fatalf("expected a document upload")
			}
			if doc.Filename != "id-card.pdf" {
				t.Fatalf("unexpected filename: %q", doc.Filename)
			}
			data, err := io.ReadAll(doc.Content)
			if err != nil || string(data) != "pdfbytes" {
				t.Fatalf("unexpected document content: %q %v", data, err)
			}
			return &domain.Application{ID: "app1"}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newMultipartContext(t, applyFormFields(), true)
	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_WithoutDocument(t *testing.T) {
	stub := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error) {
			if doc != nil {
				t.Fatalf("expected no document")
			}
			return &domain.Application{ID: "app1"}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newMultipartContext(t, applyFormFields(), false)
	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_MissingFields(t *testing.T) {
	stub := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.ApplicationInput, doc *ports.DocumentUpload) (*domain.Application, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewApplicationHandler(stub)

	fields := applyFormFields()
	delete(fields, "guardianContact")
	c, _ := newMultipartContext(t, fields, false)

	err := h.Apply(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}
