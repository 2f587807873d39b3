package resource

import (
	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// DocumentDraft holds payload for registering an uploaded document.
type DocumentDraft struct {
	Title     string `json:"title" validate:"required"`
	Type      string `json:"type" validate:"required"`
	OwnerName string `json:"owner_name" validate:"required"`
}

// Documents builds the document list controller.
func Documents(deps Deps, confirm list.ConfirmFunc[models.Document]) *list.Controller[models.Document] {
	deps.defaults()
	schema := list.Schema[models.Document]{
		Resource: "documents",
		Searchable: []list.FieldFunc[models.Document]{
			func(d models.Document) string { return d.Title },
			func(d models.Document) string { return d.OwnerName },
		},
		Filterable: map[string]list.FieldFunc[models.Document]{
			"type":   func(d models.Document) string { return d.Type },
			"status": func(d models.Document) string { return string(d.Status) },
		},
		Status:      func(d models.Document) string { return string(d.Status) },
		Transitions: models.DocumentStatusTransitions,
		Terminal:    models.DocumentTerminalStatuses,
		Fields: map[string]list.FieldFunc[models.Document]{
			"title":  func(d models.Document) string { return d.Title },
			"type":   func(d models.Document) string { return d.Type },
			"owner":  func(d models.Document) string { return d.OwnerName },
			"status": func(d models.Document) string { return string(d.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.Document]{Logger: deps.Logger, Confirm: confirm})
}
