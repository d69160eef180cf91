// Package errors defines the stable error code system for filemyrti.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract: CLI output and HTTP problem bodies carry them.
const (
	EUsage          Code = "E_USAGE"
	EInternal       Code = "E_INTERNAL"

	// Configuration
	EInvalidConfig Code = "E_INVALID_CONFIG"
	EConfigMissing Code = "E_CONFIG_MISSING" // --config points at a file that does not exist

	// State data
	EUnknownState        Code = "E_UNKNOWN_STATE"         // slug not present in the static table
	ERemoteFetchFailed   Code = "E_REMOTE_FETCH_FAILED"   // remote config source unreachable or malformed
	ERemoteNotConfigured Code = "E_REMOTE_NOT_CONFIGURED" // --remote used without remote.base_url

	// Resources
	EResourceNotFound Code = "E_RESOURCE_NOT_FOUND" // department has no template yet

	// Lead relay
	EInvalidLead      Code = "E_INVALID_LEAD"
	ELeadSubmitFailed Code = "E_LEAD_SUBMIT_FAILED"
	ELeadsDisabled    Code = "E_LEADS_DISABLED" // leads.base_url not configured
	ERateLimited      Code = "E_RATE_LIMITED"

	// Persistence
	EStoreCorrupt  Code = "E_STORE_CORRUPT"
	EPersistFailed Code = "E_PERSIST_FAILED"
)

// AppError is the standard error type for filemyrti errors.
type AppError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new AppError with the given code and message.
func New(code Code, msg string) error {
	return &AppError{Code: code, Msg: msg}
}

// NewWithDetails creates a new AppError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new AppError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &AppError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new AppError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not an AppError.
func GetCode(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// AsAppError returns (*AppError, true) if err is or wraps an AppError.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 3 for E_UNKNOWN_STATE and
// E_RESOURCE_NOT_FOUND (lookups that ran fine but found nothing), 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok {
		return ec.ExitCode()
	}
	switch GetCode(err) {
	case EUsage:
		return 2
	case EUnknownState, EResourceNotFound:
		return 3
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ae *AppError
	if errors.As(err, &ae) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", ae.Code)
		_, _ = fmt.Fprintln(w, ae.Msg)
	} else {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
