// Package resource binds each domain type to a list controller: endpoints,
// searchable and filterable fields, status transition tables, export
// columns and draft validation.
package resource

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-console/internal/client"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// Deps carries the collaborators shared by every resource controller.
type Deps struct {
	API       *client.Client
	Validator *validator.Validate
	Logger    *zap.Logger
}

func (d *Deps) defaults() {
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
}

// draftValidator adapts validator.Struct into the schema hook, converting
// field-level failures into the local validation error before any network
// call can happen.
func draftValidator(validate *validator.Validate) func(interface{}) error {
	return func(draft interface{}) error {
		err := validate.Struct(draft)
		if err == nil {
			return nil
		}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
				"invalid fields: "+strings.Join(fields, ", "))
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft")
	}
}
