package resource

import (
	"strconv"

	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// GradeDraft holds payload for recording a score. Scores outside 0-100 and
// non-numeric input are rejected locally.
type GradeDraft struct {
	StudentID string  `json:"student_id" validate:"required"`
	Subject   string  `json:"subject" validate:"required"`
	Semester  string  `json:"semester" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
}

// Grades builds the grade list controller.
func Grades(deps Deps, confirm list.ConfirmFunc[models.Grade]) *list.Controller[models.Grade] {
	deps.defaults()
	schema := list.Schema[models.Grade]{
		Resource: "grades",
		Searchable: []list.FieldFunc[models.Grade]{
			func(g models.Grade) string { return g.StudentName },
			func(g models.Grade) string { return g.Subject },
		},
		Filterable: map[string]list.FieldFunc[models.Grade]{
			"subject":  func(g models.Grade) string { return g.Subject },
			"semester": func(g models.Grade) string { return g.Semester },
			"status":   func(g models.Grade) string { return string(g.Status) },
		},
		Status:      func(g models.Grade) string { return string(g.Status) },
		Transitions: models.GradeStatusTransitions,
		Terminal:    models.GradeTerminalStatuses,
		Fields: map[string]list.FieldFunc[models.Grade]{
			"student":  func(g models.Grade) string { return g.StudentName },
			"subject":  func(g models.Grade) string { return g.Subject },
			"semester": func(g models.Grade) string { return g.Semester },
			"score":    func(g models.Grade) string { return strconv.FormatFloat(g.Score, 'f', 2, 64) },
			"status":   func(g models.Grade) string { return string(g.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.Grade]{Logger: deps.Logger, Confirm: confirm})
}
