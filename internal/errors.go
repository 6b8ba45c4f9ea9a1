package internal

import (
	"errors"
	"fmt"
)

// Error kinds reported by the loader and writers. Match with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrIO             = errors.New("i/o error")
)

// LoadError represents a failure reading a JSONL source
type LoadError struct {
	Path string
	Line int // 1-based, 0 when the failure is not tied to a line
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load error: %s line %d: %v: %v", e.Path, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("load error: %s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// WriteError represents errors writing the merged dataset
type WriteError struct {
	Format string
	Path   string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// ParseError represents errors decoding embedded or stored data
type ParseError struct {
	Source string // "catalog", "plan"
	Key    string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
