package app

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the journal's custom rules.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their `field` tag so messages read "date", not "Date".
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("field")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("isodate", validateISODate)
	})

	return validate
}

// validationMessages maps validation tags to messages.
var validationMessages = map[string]string{
	"required": "is required",
	"isodate":  "must be a calendar date in YYYY-MM-DD form",
}

// validateStruct runs struct validation and converts failures into
// domain.ValidationError values.
func validateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("", err.Error())
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, domain.NewValidationErrorWithValue(fe.Field(), validationMessage(fe), fe.Value()))
	}

	return errors.Join(errs...)
}

// validationMessage returns a readable message for a field error.
func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return msg
	}

	return "failed validation: " + fe.Tag()
}

// validateISODate accepts only dates already in canonical form.
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // required handles emptiness
	}

	return domain.IsCanonicalDate(value)
}
