package model

import "strings"

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ValidateVessel checks a Vessel record for constraint violations.
// It returns a *ValidationError if any rules fail, or nil if the record is valid.
func ValidateVessel(v *Vessel) error {
	var ve ValidationError

	if strings.TrimSpace(v.Name) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "name", Message: "is required"})
	}

	if !v.Type.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "type",
			Message: "must be one of ARTERY, VEIN, CAPILLARY",
		})
	}

	if !v.Oxygenation.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "oxygenation",
			Message: "must be one of OXYGENATED, DEOXYGENATED, MIXED",
		})
	}

	if v.DiameterMinMM != nil && *v.DiameterMinMM < 0 {
		ve.Errors = append(ve.Errors, FieldError{Field: "diameter_min_mm", Message: "must not be negative"})
	}
	if v.DiameterMaxMM != nil && *v.DiameterMaxMM < 0 {
		ve.Errors = append(ve.Errors, FieldError{Field: "diameter_max_mm", Message: "must not be negative"})
	}
	if v.DiameterMinMM != nil && v.DiameterMaxMM != nil && *v.DiameterMinMM > *v.DiameterMaxMM {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "diameter_min_mm",
			Message: "must not exceed diameter_max_mm",
		})
	}

	for _, a := range v.Aliases {
		if strings.TrimSpace(a) == "" {
			ve.Errors = append(ve.Errors, FieldError{Field: "aliases", Message: "must not contain empty entries"})
			break
		}
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}

// ValidateEdge checks an Edge record for constraint violations.
func ValidateEdge(e *Edge) error {
	var ve ValidationError

	if e.ParentID == e.ChildID {
		ve.Errors = append(ve.Errors, FieldError{Field: "child_id", Message: "must differ from parent_id"})
	}
	if !e.FlowDirection.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "flow_direction",
			Message: "must be one of FORWARD, REVERSE",
		})
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
