package resource

import (
	"time"

	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// AcademicYearDraft holds payload for opening a school year.
type AcademicYearDraft struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

// AcademicYears builds the school-year list controller.
func AcademicYears(deps Deps, confirm list.ConfirmFunc[models.AcademicYear]) *list.Controller[models.AcademicYear] {
	deps.defaults()
	schema := list.Schema[models.AcademicYear]{
		Resource: "academic-years",
		Searchable: []list.FieldFunc[models.AcademicYear]{
			func(y models.AcademicYear) string { return y.Name },
		},
		Filterable: map[string]list.FieldFunc[models.AcademicYear]{
			"status": func(y models.AcademicYear) string { return string(y.Status) },
		},
		Status:      func(y models.AcademicYear) string { return string(y.Status) },
		Transitions: models.AcademicYearStatusTransitions,
		Fields: map[string]list.FieldFunc[models.AcademicYear]{
			"name":   func(y models.AcademicYear) string { return y.Name },
			"start":  func(y models.AcademicYear) string { return y.StartDate.Format("2006-01-02") },
			"end":    func(y models.AcademicYear) string { return y.EndDate.Format("2006-01-02") },
			"status": func(y models.AcademicYear) string { return string(y.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.AcademicYear]{Logger: deps.Logger, Confirm: confirm})
}
