package models

import "time"

// LessonStatus tracks scheduling state. Completed lessons are terminal.
type LessonStatus string

const (
	LessonScheduled LessonStatus = "scheduled"
	LessonCancelled LessonStatus = "cancelled"
	LessonCompleted LessonStatus = "completed"
)

// LessonStatusTransitions is the fixed toggle table for lessons.
var LessonStatusTransitions = map[string]string{
	string(LessonScheduled): string(LessonCancelled),
	string(LessonCancelled): string(LessonScheduled),
}

// LessonTerminalStatuses lists states with no outgoing transition.
var LessonTerminalStatuses = map[string]bool{
	string(LessonCompleted): true,
}

// Lesson represents one scheduled teaching slot.
type Lesson struct {
	ID          string       `json:"id"`
	Subject     string       `json:"subject"`
	TeacherName string       `json:"teacher_name"`
	ClassName   string       `json:"class_name"`
	Room        string       `json:"room"`
	StartsAt    time.Time    `json:"starts_at"`
	EndsAt      time.Time    `json:"ends_at"`
	Status      LessonStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (l Lesson) RecordID() string { return l.ID }
