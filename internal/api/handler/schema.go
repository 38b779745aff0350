package handler

import "github.com/hostelhub/hostel-api/internal/core/domain"

// messageResponse is the envelope used for success and error bodies alike,
// matching the public contract the frontend consumes.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string             `json:"message"`
	User    domain.UserSummary `json:"user"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Room application (multipart form fields) ---

type applyRequest struct {
	FullName        string `form:"fullName"        validate:"required"`
	Gender          string `form:"gender"          validate:"required"`
	DateOfBirth     string `form:"dob"             validate:"required"`
	ContactNumber   string `form:"contactNumber"   validate:"required"`
	Email           string `form:"email"           validate:"required,email"`
	Address         string `form:"address"         validate:"required"`
	Course          string `form:"course"          validate:"required"`
	GuardianName    string `form:"guardianName"    validate:"required"`
	GuardianContact string `form:"guardianContact" validate:"required"`
	RoomPreference  string `form:"roomPreference"  validate:"required"`
}

// --- Complaints / contact ---

type complaintRequest struct {
	Name          string `json:"name"          validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	ComplaintType string `json:"complaintType" validate:"required"`
	Description   string `json:"description"   validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// --- Event registration ---

type registerEventRequest struct {
	FullName  string `json:"fullName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required"`
	Gender    string `json:"gender"    validate:"required"`
	EventType string `json:"eventType" validate:"required"`
	Comment   string `json:"comment"`
}
