package errors

import (
	"fmt"
)

// IoError reports a findings document that could not be read.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError wraps err as an IoError for the given path.
func NewIoError(path string, err error) error {
	return &IoError{Path: path, Err: err}
}

// MalformedInputError reports a findings document that does not decode into the SARIF schema.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed SARIF document: %v", e.Err)
	}
	return fmt.Sprintf("malformed SARIF document %q: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// RemoteError covers every failed exchange with the tracker: transport failures,
// non-2xx statuses and response bodies that cannot be decoded.
type RemoteError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NewRemoteError builds a RemoteError; statusCode is 0 when no response was received.
func NewRemoteError(method, url string, statusCode int, err error) error {
	return &RemoteError{Method: method, URL: url, StatusCode: statusCode, Err: err}
}

// PaginationLimitError is returned when an issue listing does not end within the page cap.
type PaginationLimitError struct {
	Pages int
}

func (e *PaginationLimitError) Error() string {
	return fmt.Sprintf("issue listing did not terminate after %d pages", e.Pages)
}

// CommandError represents an error that occurred during command execution together with the exit code to report.
type CommandError struct {
	ExitCode    int
	CommonError string
	Err         error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

func (e *CommandError) Unwrap() error { return e.Err }

// NewCommandError creates a new CommandError instance carrying the exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Err:         err,
	}
}
