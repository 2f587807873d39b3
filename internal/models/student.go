package models

import "time"

// StudentStatus tracks enrollment state. Graduated and transferred are
// terminal; no transition leads out of them.
type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentInactive    StudentStatus = "inactive"
	StudentGraduated   StudentStatus = "graduated"
	StudentTransferred StudentStatus = "transferred"
)

// StudentStatusTransitions is the fixed toggle table for students.
var StudentStatusTransitions = map[string]string{
	string(StudentActive):   string(StudentInactive),
	string(StudentInactive): string(StudentActive),
}

// StudentTerminalStatuses lists states with no outgoing transition.
var StudentTerminalStatuses = map[string]bool{
	string(StudentGraduated):   true,
	string(StudentTransferred): true,
}

// Student represents a learner registered in the institution.
type Student struct {
	ID        string        `json:"id"`
	NIS       string        `json:"nis"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Gender    string        `json:"gender"`
	BirthDate time.Time     `json:"birth_date"`
	ClassName string        `json:"class_name"`
	Status    StudentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (s Student) RecordID() string { return s.ID }
