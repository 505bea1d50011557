package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"resort/shared/constant"
	"resort/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

var validate *val.Validate

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

func registerClockValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.ClockFormat, field.Field().String())

	return err == nil
}

// registerPhoneValidation accepts numbers written with spaces, dashes, dots,
// brackets or a leading plus as long as the digit count is plausible.
// Only ASCII digits count, matching how booking keys are normalized.
func registerPhoneValidation(field val.FieldLevel) bool {
	digits := 0

	for _, r := range field.Field().String() {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("+-. ()", r):
		default:
			return false
		}
	}

	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	if err = validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	if err = validate.RegisterValidation("date", registerDateValidation); err != nil {
		panic(err)
	}

	if err = validate.RegisterValidation("clock", registerClockValidation); err != nil {
		panic(err)
	}

	if err = validate.RegisterValidation("phone", registerPhoneValidation); err != nil {
		panic(err)
	}
}

// Validate decodes the JSON body from r into data and validates it.
// Decode errors are reported as 400, rule violations as 422 with per-field messages.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg, fields := messages(err)

		return failure.ValidationFields(msg, fields) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg, _ := messages(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
