package domain

import "time"

// Application is a hostel room application submitted by a prospective
// resident, together with the path of the uploaded supporting document.
type Application struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Gender          string    `json:"gender"`
	DateOfBirth     string    `json:"dob"`
	ContactNumber   string    `json:"contactNumber"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	Course          string    `json:"course"`
	GuardianName    string    `json:"guardianName"`
	GuardianContact string    `json:"guardianContact"`
	RoomPreference  string    `json:"roomPreference"`
	DocumentPath    string    `json:"documentPath,omitempty"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}
