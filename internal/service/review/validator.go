package review

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Unwrap() error {
	return domain.ErrValidation
}

type submissionValidator struct {
	validate *validator.Validate
}

func newSubmissionValidator() *submissionValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("review_type", func(fl validator.FieldLevel) bool {
		return domain.ReviewType(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return &submissionValidator{validate: v}
}

func (v *submissionValidator) Validate(s *Submission) error {
	var out ValidationErrors
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		out = translate(validationErrs)
	}
	if s.Type.Valid() && !s.Ratings.Matches(s.Type) {
		out = append(out, ValidationError{
			Field:   "ratings",
			Message: fmt.Sprintf("only %s category ratings are allowed", s.Type),
		})
	}
	if len(out) > 0 {
		return out
	}
	return nil
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required", "notblank":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "review_type":
			message = "type must be one of hotel, buddy, carpool, driver"
		}
		out = append(out, ValidationError{Field: err.Field(), Message: message})
	}
	return out
}
