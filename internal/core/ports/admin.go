package ports

import "context"

// AdminService exposes the admin dashboard's raw resource listings.
type AdminService interface {
	// ListResource returns all rows of the named resource (users,
	// applications, complaints, contacts, events). Returns
	// domain.ErrResourceUnknown for anything else. User rows never include
	// the password hash.
	ListResource(ctx context.Context, resource string) (any, error)
}
