package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation is a single field-level validation failure. Writes carrying at
// least one violation are rejected entirely before any commit.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidator builds a validator that reports fields by their json name,
// so violations line up with the request payload.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// CollectViolations turns a validator error into a structured violation
// list. A nil return means the value is valid.
func CollectViolations(err error) []Violation {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Field: "", Message: err.Error()}}
	}
	violations := make([]Violation, 0, len(verrs))
	for _, e := range verrs {
		violations = append(violations, Violation{
			Field:   e.Field(),
			Message: violationMessage(e),
		})
	}
	return violations
}

func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		// Relationship ids are resolved against the repository before
		// validation; a dangling id leaves the reference nil and lands here.
		if strings.HasPrefix(e.Field(), "id") {
			return "required relationship missing"
		}
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s characters", e.Param())
	case "gte":
		return "must be positive or zero"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
