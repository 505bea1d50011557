package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} must not be blank",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param}",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid id",
		"date":     "{field} must be a date formatted as YYYY-MM-DD",
		"clock":    "{field} must be a time formatted as HH:MM",
		"phone":    "{field} must be a valid phone number",
		"dive":     "{field} contains an invalid value",
	}
)

func render(valErr val.FieldError) string {
	tpl, ok := templates[valErr.Tag()]
	if !ok {
		return valErr.Field() + " is invalid"
	}

	tpl = strings.ReplaceAll(tpl, "{field}", valErr.Field())

	return strings.ReplaceAll(tpl, "{param}", valErr.Param())
}

// messages returns the first human readable message and a map of every
// offending field keyed by its json name.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	first := ""

	for _, valErr := range valErrors {
		msg := render(valErr)
		if first == "" {
			first = msg
		}

		if _, exist := fields[valErr.Field()]; !exist {
			fields[valErr.Field()] = msg
		}
	}

	return first, fields
}
