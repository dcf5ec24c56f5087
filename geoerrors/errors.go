package geoerrors

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Kind tags an error with its failure category.
type Kind string

const (
	// KindRuntime indicates a generic precondition or invariant violation.
	KindRuntime Kind = "runtime"
	// KindConfiguration indicates a required dependency is disabled in this build.
	KindConfiguration Kind = "configuration"
	// KindImplementation indicates a feature that is not yet implemented.
	KindImplementation Kind = "implementation"
	// KindGeant indicates an error surfaced by the source geometry model.
	KindGeant Kind = "geant"
	// KindVecgeom indicates an error surfaced by the destination geometry model.
	KindVecgeom Kind = "vecgeom"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrRuntime indicates a runtime invariant violation.
	ErrRuntime = errors.New("runtime error")

	// ErrConfiguration indicates a required dependency is disabled in this build.
	ErrConfiguration = errors.New("configuration error")

	// ErrImplementation indicates a feature that is not yet implemented.
	ErrImplementation = errors.New("implementation error")

	// ErrGeant indicates a failure in the source geometry model.
	ErrGeant = errors.New("geant error")

	// ErrVecgeom indicates a failure in the destination geometry model.
	ErrVecgeom = errors.New("vecgeom error")
)

// Details holds the structured properties of a runtime error.
// It is constructed at the failure site and immutable thereafter.
type Details struct {
	// Kind is the failure category
	Kind Kind
	// Message is the descriptive failure message
	Message string
	// Condition is the textual form of the condition that failed, if any
	Condition string
	// File is the source file where the failure was detected
	File string
	// Line is the source line where the failure was detected (0 if unknown)
	Line int
}

// Render builds the human-readable form of the details.
//
// The non-verbose rendering suppresses the source location and failed
// condition, except when the kind is not KindRuntime or the message is
// empty: in those cases the short message alone would be uninformative,
// so the detail is always shown.
func (d Details) Render(verbose bool) string {
	var msg strings.Builder

	msg.WriteString("geomtools: ")
	if d.Kind == "" {
		msg.WriteString("unknown")
	} else {
		msg.WriteString(string(d.Kind))
	}
	msg.WriteString(" error: ")
	switch d.Kind {
	case KindConfiguration:
		msg.WriteString("required dependency is disabled in this build: ")
	case KindImplementation:
		msg.WriteString("feature is not yet implemented: ")
	}
	msg.WriteString(d.Message)

	if verbose || d.Message == "" || d.Kind != KindRuntime {
		msg.WriteByte('\n')
		if d.File == "" {
			msg.WriteString("unknown source")
		} else {
			msg.WriteString(d.File)
			if d.Line > 0 {
				fmt.Fprintf(&msg, ":%d", d.Line)
			}
		}
		msg.WriteByte(':')
		if d.Condition != "" {
			fmt.Fprintf(&msg, " '%s' failed", d.Condition)
		} else {
			msg.WriteString(" failure")
		}
	}

	return msg.String()
}

// RuntimeError is an error raised from an unexpected runtime condition.
// There is no retry or recovery state: a RuntimeError propagates until
// caught by the caller.
type RuntimeError struct {
	details Details
	cause   error
}

// New creates a RuntimeError with the given kind and message, capturing
// the caller's source location.
func New(kind Kind, message string) *RuntimeError {
	return newAt(2, kind, message, "")
}

// Newf creates a RuntimeError with a formatted message, capturing the
// caller's source location.
func Newf(kind Kind, format string, args ...any) *RuntimeError {
	return newAt(2, kind, fmt.Sprintf(format, args...), "")
}

// Wrap creates a RuntimeError around an underlying cause. The cause is
// reachable through errors.Unwrap for error chaining.
func Wrap(kind Kind, cause error, message string) *RuntimeError {
	e := newAt(2, kind, message, "")
	e.cause = cause
	return e
}

// NotImplemented creates an implementation-kind error for a feature this
// build does not support.
func NotImplemented(feature string) *RuntimeError {
	return newAt(2, KindImplementation, feature, "")
}

// NotConfigured creates a configuration-kind error for a dependency that
// is disabled in this build.
func NotConfigured(dependency string) *RuntimeError {
	return newAt(2, KindConfiguration, dependency, "")
}

// KindOf returns the failure category of the nearest RuntimeError in
// err's chain. Errors raised outside this package report KindRuntime.
// It lets callers re-wrap a cause without relabeling its category.
func KindOf(err error) Kind {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.details.Kind
	}
	return KindRuntime
}

// Validate returns nil when cond holds, and otherwise a runtime-kind
// error recording the failed condition text and the caller's location.
//
//	if err := geoerrors.Validate(scale > 0, "scale > 0",
//	    "unit scale must be positive (got %g)", scale); err != nil {
//	    return err
//	}
func Validate(cond bool, condition string, format string, args ...any) error {
	if cond {
		return nil
	}
	e := newAt(2, KindRuntime, fmt.Sprintf(format, args...), condition)
	return e
}

func newAt(skip int, kind Kind, message, condition string) *RuntimeError {
	d := Details{
		Kind:      kind,
		Message:   message,
		Condition: condition,
	}
	if _, file, line, ok := runtime.Caller(skip); ok {
		d.File = file
		d.Line = line
	}
	return &RuntimeError{details: d}
}

// Details returns the structured failure properties.
func (e *RuntimeError) Details() Details {
	return e.details
}

// Error returns the rendered message. Verbose rendering is enabled when
// the GEOMTOOLS_LOG environment variable is non-empty.
func (e *RuntimeError) Error() string {
	msg := e.details.Render(verboseErrors())
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error's kind sentinel.
func (e *RuntimeError) Is(target error) bool {
	switch target {
	case ErrRuntime:
		return e.details.Kind == KindRuntime
	case ErrConfiguration:
		return e.details.Kind == KindConfiguration
	case ErrImplementation:
		return e.details.Kind == KindImplementation
	case ErrGeant:
		return e.details.Kind == KindGeant
	case ErrVecgeom:
		return e.details.Kind == KindVecgeom
	}
	return false
}

// verboseErrors reports whether error rendering should include source
// locations and failed conditions even for plain runtime errors.
func verboseErrors() bool {
	return os.Getenv("GEOMTOOLS_LOG") != ""
}
