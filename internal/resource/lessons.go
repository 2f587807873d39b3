package resource

import (
	"time"

	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// LessonDraft holds payload for scheduling a teaching slot.
type LessonDraft struct {
	Subject     string    `json:"subject" validate:"required"`
	TeacherName string    `json:"teacher_name" validate:"required"`
	ClassName   string    `json:"class_name" validate:"required"`
	Room        string    `json:"room"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

// Lessons builds the lesson list controller.
func Lessons(deps Deps, confirm list.ConfirmFunc[models.Lesson]) *list.Controller[models.Lesson] {
	deps.defaults()
	schema := list.Schema[models.Lesson]{
		Resource: "lessons",
		Searchable: []list.FieldFunc[models.Lesson]{
			func(l models.Lesson) string { return l.Subject },
			func(l models.Lesson) string { return l.TeacherName },
		},
		Filterable: map[string]list.FieldFunc[models.Lesson]{
			"class":  func(l models.Lesson) string { return l.ClassName },
			"status": func(l models.Lesson) string { return string(l.Status) },
		},
		Status:      func(l models.Lesson) string { return string(l.Status) },
		Transitions: models.LessonStatusTransitions,
		Terminal:    models.LessonTerminalStatuses,
		Fields: map[string]list.FieldFunc[models.Lesson]{
			"subject": func(l models.Lesson) string { return l.Subject },
			"teacher": func(l models.Lesson) string { return l.TeacherName },
			"class":   func(l models.Lesson) string { return l.ClassName },
			"room":    func(l models.Lesson) string { return l.Room },
			"starts":  func(l models.Lesson) string { return l.StartsAt.Format(time.RFC3339) },
			"status":  func(l models.Lesson) string { return string(l.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.Lesson]{Logger: deps.Logger, Confirm: confirm})
}
