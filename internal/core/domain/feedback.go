package domain

import "time"

// Complaint is a maintenance or service complaint filed by a resident.
type Complaint struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ComplaintType string    `json:"complaintType"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
