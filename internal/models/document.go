package models

import "time"

// DocumentStatus tracks the verification workflow. Rejected is terminal.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

// DocumentStatusTransitions is the fixed toggle table for documents.
// Verified documents may be sent back for re-review.
var DocumentStatusTransitions = map[string]string{
	string(DocumentPending):  string(DocumentVerified),
	string(DocumentVerified): string(DocumentPending),
}

// DocumentTerminalStatuses lists states with no outgoing transition.
var DocumentTerminalStatuses = map[string]bool{
	string(DocumentRejected): true,
}

// Document represents an uploaded file pending administrative review.
type Document struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	OwnerName  string         `json:"owner_name"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploaded_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (d Document) RecordID() string { return d.ID }
