package service

import (
	"context"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

// Resource names accepted by the admin dashboard viewer. The camelCase forms
// are what the dashboard requests; the short forms are accepted as aliases.
const (
	ResourceUsers        = "users"
	ResourceApplications = "applications"
	ResourceComplaints   = "complaints"
	ResourceContacts     = "contactMessages"
	ResourceEvents       = "eventRegistrations"
)

// AdminService returns raw resource listings for the admin dashboard.
type AdminService struct {
	users        ports.UserRepository
	applications ports.ApplicationRepository
	complaints   ports.ComplaintRepository
	contacts     ports.ContactRepository
	events       ports.EventRepository
}

func NewAdminService(
	users ports.UserRepository,
	applications ports.ApplicationRepository,
	complaints ports.ComplaintRepository,
	contacts ports.ContactRepository,
	events ports.EventRepository,
) *AdminService {
	return &AdminService{
		users:        users,
		applications: applications,
		complaints:   complaints,
		contacts:     contacts,
		events:       events,
	}
}

// ListResource fans out to the matching repository. User rows go through the
// domain.User JSON contract, which already hides the password hash.
func (s *AdminService) ListResource(ctx context.Context, resource string) (any, error) {
	switch resource {
	case ResourceUsers:
		return s.users.ListAll(ctx)
	case ResourceApplications:
		return s.applications.ListAll(ctx)
	case ResourceComplaints:
		return s.complaints.ListAll(ctx)
	case ResourceContacts, "contacts":
		return s.contacts.ListAll(ctx)
	case ResourceEvents, "events":
		return s.events.ListAll(ctx)
	default:
		return nil, domain.ErrResourceUnknown
	}
}
