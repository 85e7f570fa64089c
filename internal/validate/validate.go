// Package validate holds the single definition of the field rules shared by
// the API boundary and the test suite. The rules themselves live as validate
// tags on the request input structs; this package turns violations into
// stable, client-facing messages.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var v *validator.Validate

func init() {
	v = validator.New()

	// publishedYear must not be in the future relative to the calendar year.
	_ = v.RegisterValidation("currentyear", func(fl validator.FieldLevel) bool {
		return int(fl.Field().Int()) <= time.Now().Year()
	})
}

// FieldError describes a single constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of violations for one input. It implements error;
// the error string is the first violation's message, matching the wire
// contract of surfacing the first field violation.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

// Struct validates s against its validate tags. It returns nil when the input
// is clean and an Errors value otherwise.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var errs Errors
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s cannot exceed %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s cannot exceed %s", field, param)
		case "currentyear":
			message = fmt.Sprintf("%s cannot be in the future", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errs = append(errs, FieldError{Field: fieldName, Message: message})
	}

	return errs
}
