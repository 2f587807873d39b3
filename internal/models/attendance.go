package models

import "time"

// AttendanceStatus enumerates daily attendance marks.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// AttendanceStatusTransitions is the fixed toggle table for attendance
// entries. Present flips to absent; every other mark corrects to present.
var AttendanceStatusTransitions = map[string]string{
	string(AttendancePresent): string(AttendanceAbsent),
	string(AttendanceAbsent):  string(AttendancePresent),
	string(AttendanceLate):    string(AttendancePresent),
	string(AttendanceExcused): string(AttendancePresent),
}

// AttendanceEntry represents one student's mark for one school day.
type AttendanceEntry struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	ClassName   string           `json:"class_name"`
	Date        time.Time        `json:"date"`
	Status      AttendanceStatus `json:"status"`
	Note        string           `json:"note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (a AttendanceEntry) RecordID() string { return a.ID }
