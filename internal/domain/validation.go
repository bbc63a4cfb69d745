package domain

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromRuleErrors converts ozzo-validation errors into a *ValidationError with
// one FieldError per failed field, ordered by field name. Other errors are
// returned unchanged.
func FromRuleErrors(err error) error {
	if err == nil {
		return nil
	}

	var ruleErrs validation.Errors
	if !errors.As(err, &ruleErrs) {
		return err
	}

	fields := make([]string, 0, len(ruleErrs))
	for field := range ruleErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldError{Field: field, Message: ruleErrs[field].Error()})
	}
	return NewValidationErrors(out)
}
