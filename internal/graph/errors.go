// Package graph holds the in-memory vascular graph: an immutable snapshot
// built from flat records, plus the traversal, search, and region-forest
// queries that run against it.
package graph

import "fmt"

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Kind string // "vessel" or "region"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

// NoPathError reports that both endpoints exist but no directed route
// connects them within the depth bound. Distinct from NotFoundError: both
// operands are valid.
type NoPathError struct {
	SourceName string
	TargetName string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path found from vessel %q to vessel %q", e.SourceName, e.TargetName)
}

// IntegrityError reports a defect in the loaded dataset (duplicate vessel id,
// edge referencing an unknown vessel, duplicate edge pair, region cycle).
// It is fatal to that load attempt; the previous snapshot keeps serving.
type IntegrityError struct {
	Reason string
	Err    error // optional underlying cause
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return "data integrity: " + e.Reason + ": " + e.Err.Error()
	}
	return "data integrity: " + e.Reason
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func integrityf(format string, args ...any) *IntegrityError {
	return &IntegrityError{Reason: fmt.Sprintf(format, args...)}
}
