package models

import "fmt"

// ValidationResult is the outcome of matching a module list against a ValidationConfig
type ValidationResult struct {
	MissingMandatory  []DependencyName
	PresentDisallowed []DependencyName
}

// Valid returns true if no mandatory dependency is missing and no disallowed one is present
func (r ValidationResult) Valid() bool {
	return len(r.MissingMandatory) == 0 && len(r.PresentDisallowed) == 0
}

// Status is the terminal state of a run
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning        // invalid, but advisory only
	StatusFailure
)

// String returns a human-readable representation
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusWarning:
		return "WARNING"
	default:
		return "FAILURE"
	}
}

// Outcome is what a run hands back to the outermost adapter instead of exiting
type Outcome struct {
	Status  Status
	Message string
}

// ExitCode maps the outcome to a process exit status
func (o Outcome) ExitCode() int {
	if o.Status == StatusFailure {
		return 1
	}
	return 0
}

// ConfigError is a fatal configuration problem detected before validation runs
type ConfigError struct {
	Msg string
	Err error
}

// NewConfigError creates a ConfigError from a format string
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
