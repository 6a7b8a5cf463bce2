package router

import (
	"errors"
	"fmt"
)

// Pattern errors, reported at registration time only.
var (
	ErrInvalidPattern          = errors.New("invalid route path pattern")
	ErrInvalidWildcardPosition = errors.New("wildcard '*' must be the last segment in a route")
	ErrInvalidOptionalPosition = errors.New("optional param must be the last segment in a route")
	ErrDuplicateParamName      = errors.New("routing pattern contains duplicate param name")
)

// CompileError describes a pattern that could not be compiled.
// It unwraps to one of the pattern sentinel errors.
type CompileError struct {
	Pattern string // Original pattern as passed to Compile
	Segment string // Offending segment, empty when not segment specific
	Index   int    // Zero-based segment index, -1 when not segment specific
	Err     error  // Sentinel error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: '%s'", e.Err, e.Pattern)
	}
	return fmt.Sprintf("%v: '%s' segment %d '%s'", e.Err, e.Pattern, e.Index, e.Segment)
}

// Unwrap allows errors.Is/As to match the underlying sentinel.
func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileErr(pattern string, idx int, seg string, err error) *CompileError {
	return &CompileError{Pattern: pattern, Segment: seg, Index: idx, Err: err}
}
