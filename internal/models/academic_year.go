package models

import "time"

// AcademicYearStatus tracks the lifecycle of a school year.
type AcademicYearStatus string

const (
	YearUpcoming AcademicYearStatus = "upcoming"
	YearActive   AcademicYearStatus = "active"
	YearArchived AcademicYearStatus = "archived"
)

// AcademicYearStatusTransitions is the fixed toggle table for school years.
var AcademicYearStatusTransitions = map[string]string{
	string(YearUpcoming): string(YearActive),
	string(YearActive):   string(YearArchived),
	string(YearArchived): string(YearActive),
}

// AcademicYear represents one school year with its term boundaries.
type AcademicYear struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Status    AcademicYearStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (y AcademicYear) RecordID() string { return y.ID }
