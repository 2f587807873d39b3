package models

import "time"

// GradeStatus tracks whether a grade may still be edited. Final grades are
// terminal.
type GradeStatus string

const (
	GradeDraft GradeStatus = "draft"
	GradeFinal GradeStatus = "final"
)

// GradeStatusTransitions is the fixed toggle table for grades.
var GradeStatusTransitions = map[string]string{
	string(GradeDraft): string(GradeFinal),
}

// GradeTerminalStatuses lists states with no outgoing transition.
var GradeTerminalStatuses = map[string]bool{
	string(GradeFinal): true,
}

// Grade represents a score awarded to a student for a subject.
type Grade struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"student_id"`
	StudentName string      `json:"student_name"`
	Subject     string      `json:"subject"`
	Semester    string      `json:"semester"`
	Score       float64     `json:"score"`
	Status      GradeStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (g Grade) RecordID() string { return g.ID }
