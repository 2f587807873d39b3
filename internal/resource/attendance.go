package resource

import (
	"time"

	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// AttendanceDraft holds payload for marking one student on one day.
type AttendanceDraft struct {
	StudentID string    `json:"student_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      string    `json:"note"`
}

// Attendance builds the attendance list controller.
func Attendance(deps Deps, confirm list.ConfirmFunc[models.AttendanceEntry]) *list.Controller[models.AttendanceEntry] {
	deps.defaults()
	schema := list.Schema[models.AttendanceEntry]{
		Resource: "attendance",
		Searchable: []list.FieldFunc[models.AttendanceEntry]{
			func(a models.AttendanceEntry) string { return a.StudentName },
		},
		Filterable: map[string]list.FieldFunc[models.AttendanceEntry]{
			"class":  func(a models.AttendanceEntry) string { return a.ClassName },
			"status": func(a models.AttendanceEntry) string { return string(a.Status) },
		},
		Status:      func(a models.AttendanceEntry) string { return string(a.Status) },
		Transitions: models.AttendanceStatusTransitions,
		Fields: map[string]list.FieldFunc[models.AttendanceEntry]{
			"student": func(a models.AttendanceEntry) string { return a.StudentName },
			"class":   func(a models.AttendanceEntry) string { return a.ClassName },
			"date":    func(a models.AttendanceEntry) string { return a.Date.Format("2006-01-02") },
			"status":  func(a models.AttendanceEntry) string { return string(a.Status) },
			"note":    func(a models.AttendanceEntry) string { return a.Note },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.AttendanceEntry]{Logger: deps.Logger, Confirm: confirm})
}
