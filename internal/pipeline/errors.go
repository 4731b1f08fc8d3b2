package pipeline

import "errors"

// FailureKind tells recovery boundaries which stage of the pipeline failed.
type FailureKind string

const (
	FailureValidation     FailureKind = "validation_failed"
	FailureTranslation    FailureKind = "translation_failed"
	FailureClassification FailureKind = "classification_failed"
	FailureUnavailable    FailureKind = "service_unavailable"
)

// Error wraps an adapter error with the pipeline stage it came from.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind of a pipeline error, or an empty kind for
// anything else.
func KindOf(err error) FailureKind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	return ""
}
