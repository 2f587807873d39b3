package resource

import (
	"time"

	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// StudentDraft holds payload for registering students.
type StudentDraft struct {
	NIS       string    `json:"nis" validate:"required"`
	FullName  string    `json:"full_name" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Gender    string    `json:"gender" validate:"required,oneof=M F"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	ClassName string    `json:"class_name"`
}

// Students builds the student list controller.
func Students(deps Deps, confirm list.ConfirmFunc[models.Student]) *list.Controller[models.Student] {
	deps.defaults()
	schema := list.Schema[models.Student]{
		Resource: "students",
		Searchable: []list.FieldFunc[models.Student]{
			func(s models.Student) string { return s.FullName },
			func(s models.Student) string { return s.NIS },
			func(s models.Student) string { return s.Email },
		},
		Filterable: map[string]list.FieldFunc[models.Student]{
			"class":  func(s models.Student) string { return s.ClassName },
			"status": func(s models.Student) string { return string(s.Status) },
		},
		Status:         func(s models.Student) string { return string(s.Status) },
		Transitions:    models.StudentStatusTransitions,
		Terminal:       models.StudentTerminalStatuses,
		InactiveStatus: string(models.StudentInactive),
		Fields: map[string]list.FieldFunc[models.Student]{
			"nis":    func(s models.Student) string { return s.NIS },
			"name":   func(s models.Student) string { return s.FullName },
			"email":  func(s models.Student) string { return s.Email },
			"class":  func(s models.Student) string { return s.ClassName },
			"status": func(s models.Student) string { return string(s.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.Student]{Logger: deps.Logger, Confirm: confirm})
}
