package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure. Each kind maps to its own
// headline so the UI can show a short message up front and keep the
// technical detail collapsed.
type ErrorKind string

const (
	ErrorKindConfiguration  ErrorKind = "configuration"
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindPermission     ErrorKind = "permission"
	ErrorKindBadRequest     ErrorKind = "bad_request"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindUnprocessable  ErrorKind = "unprocessable"
	ErrorKindRateLimit      ErrorKind = "rate_limit"
	ErrorKindConnection     ErrorKind = "connection"
	ErrorKindTimeout        ErrorKind = "timeout"
	ErrorKindServer         ErrorKind = "server"
	ErrorKindParse          ErrorKind = "parse"
	ErrorKindSchema         ErrorKind = "schema"
)

// remoteKinds are failures of the model service itself; they share one
// generic headline.
var remoteKinds = map[ErrorKind]bool{
	ErrorKindAuthentication: true,
	ErrorKindPermission:     true,
	ErrorKindBadRequest:     true,
	ErrorKindNotFound:       true,
	ErrorKindUnprocessable:  true,
	ErrorKindRateLimit:      true,
	ErrorKindConnection:     true,
	ErrorKindTimeout:        true,
	ErrorKindServer:         true,
}

// PipelineError is any failure between accepting a paragraph and
// producing a validated ExplainerOutput.
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Headline returns the short user-facing message for this failure.
func (e *PipelineError) Headline() string {
	switch {
	case e.Kind == ErrorKindConfiguration:
		return "The explainer is not configured."
	case remoteKinds[e.Kind]:
		return "OpenAI API request failed."
	default:
		return "Couldn't produce a valid JSON result."
	}
}

// IsRemote reports whether the failure came from the model service.
func (e *PipelineError) IsRemote() bool {
	return remoteKinds[e.Kind]
}

// NewPipelineError wraps err with a failure kind.
func NewPipelineError(kind ErrorKind, err error) *PipelineError {
	return &PipelineError{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from err, or "" if err is not a
// pipeline error.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
