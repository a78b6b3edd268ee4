// Package forms describes the assessment steps and their fields, and performs
// the form-level required-field check.
package forms

import (
	"fmt"
	"strings"
)

type FieldKind string

const (
	KindText   FieldKind = "text"
	KindNumber FieldKind = "number"
	KindSingle FieldKind = "single"
	KindMulti  FieldKind = "multi"
)

type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

type Step struct {
	ID     int     `json:"id"`
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// FieldError reports a single field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Steps returns every step in order. The final results step has no fields.
func Steps() []Step {
	return []Step{healthStep, lifestyleStep, financialStep, resultsStep}
}

// Lookup finds a step by key ("health") or by number ("1").
func Lookup(ref string) (Step, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	for _, s := range Steps() {
		if s.Key == ref || fmt.Sprint(s.ID) == ref {
			return s, true
		}
	}
	return Step{}, false
}

// Validate checks that every required field of the step has an answer.
// Answers are the flat field-name to value mapping collected by the form;
// nothing beyond presence is checked.
func Validate(step Step, answers map[string]any) []FieldError {
	var errs []FieldError
	for _, f := range step.Fields {
		if !f.Required {
			continue
		}
		if !answered(answers[f.Name]) {
			errs = append(errs, FieldError{Field: f.Name, Message: f.Label + " is required"})
		}
	}
	return errs
}

func answered(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	default:
		return true
	}
}
