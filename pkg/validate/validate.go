// Package validate provides syntactic form validation for the portal's
// registration and data-entry forms: required fields, email shape, and
// phone shape. Validation is purely syntactic — no uniqueness or
// cross-field checks.
package validate

import (
	"regexp"
	"strings"
)

// Field types understood by the validator. Any other type only gets the
// required check.
const (
	TypeText  = "text"
	TypeEmail = "email"
	TypeTel   = "tel"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)
)

// Field is a snapshot of a single form input.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

// FieldError annotates a failing field with exactly one message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error messages shown next to failing inputs.
const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email"
	MsgPhone    = "Please enter a valid phone number"
)

// Form checks every field and returns one error per failing field, in
// field order. A nil result means the form passes. Checks are ordered
// required → email → phone so a field never carries more than one error.
func Form(fields []Field) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		value := strings.TrimSpace(f.Value)
		switch {
		case f.Required && value == "":
			errs = append(errs, FieldError{Field: f.Name, Message: MsgRequired})
		case f.Type == TypeEmail && value != "" && !emailRe.MatchString(value):
			errs = append(errs, FieldError{Field: f.Name, Message: MsgEmail})
		case f.Type == TypeTel && value != "" && !phoneRe.MatchString(value):
			errs = append(errs, FieldError{Field: f.Name, Message: MsgPhone})
		}
	}
	return errs
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone reports whether s looks like a phone number.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}
