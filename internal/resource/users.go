package resource

import (
	"github.com/noah-isme/sma-console/internal/list"
	"github.com/noah-isme/sma-console/internal/models"
)

// UserDraft holds payload for creating accounts. Password confirmation is
// checked locally; the pair never reaches the API when mismatched.
type UserDraft struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=ADMIN SECRETARY TEACHER PATRON PARENT"`
}

// Users builds the account list controller.
func Users(deps Deps, confirm list.ConfirmFunc[models.User]) *list.Controller[models.User] {
	deps.defaults()
	schema := list.Schema[models.User]{
		Resource: "users",
		Searchable: []list.FieldFunc[models.User]{
			func(u models.User) string { return u.FullName },
			func(u models.User) string { return u.Email },
		},
		Filterable: map[string]list.FieldFunc[models.User]{
			"role":   func(u models.User) string { return string(u.Role) },
			"status": func(u models.User) string { return string(u.Status) },
		},
		Status:         func(u models.User) string { return string(u.Status) },
		Transitions:    models.UserStatusTransitions,
		InactiveStatus: string(models.UserInactive),
		Fields: map[string]list.FieldFunc[models.User]{
			"name":   func(u models.User) string { return u.FullName },
			"email":  func(u models.User) string { return u.Email },
			"role":   func(u models.User) string { return string(u.Role) },
			"status": func(u models.User) string { return string(u.Status) },
		},
		ValidateDraft: draftValidator(deps.Validator),
	}
	return list.NewController(schema, deps.API, list.Options[models.User]{Logger: deps.Logger, Confirm: confirm})
}
