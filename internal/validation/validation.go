// Package validation checks form input before it is submitted and maps
// each failing field to a message the UI renders inline. An empty result
// means the form is valid; absence of a key means that field passed.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/wellnesstracker/internal"
)

// Errors maps a form field name (its json name) to a human-readable message.
type Errors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their json names so error maps line up with
	// the wire format and the form field ids.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var messages = map[string]string{
	"email.required":           "Email is required",
	"email.email":              "Please enter a valid email address",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 8 characters long",
	"confirmPassword.required": "Confirm password is required",
	"confirmPassword.eqfield":  "Passwords do not match",
	"mood.required":            "Mood is required",
	"sleepDuration.gte":        "Sleep duration must be between 0 and 12 hours",
	"sleepDuration.lte":        "Sleep duration must be between 0 and 12 hours",
	"activityNotes.required":   "Activity notes are required",
	"activityNotes.max":        "Activity notes must be less than 200 characters",
}

// LoginForm validates email and password for the login form.
func LoginForm(data internal.LoginData) Errors {
	return collect(validate.Struct(data))
}

// SignupForm validates login rules plus the confirm-password field.
func SignupForm(data internal.SignupData) Errors {
	return collect(validate.Struct(data))
}

// WellnessLogForm validates a log entry form. Mood enumeration membership
// is enforced by the input widget, not re-checked here.
func WellnessLogForm(form internal.WellnessLogForm) Errors {
	return collect(validate.Struct(form))
}

// HasErrors reports whether any field failed validation.
func HasErrors(errs Errors) bool {
	return len(errs) > 0
}

func collect(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
				errs[fe.Field()] = msg
			} else {
				errs[fe.Field()] = "Invalid value"
			}
		}
	}
	return errs
}
