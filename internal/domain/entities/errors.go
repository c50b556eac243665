package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAttribute is wrapped when a report element lacks a required attribute
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrUnexpectedElement is wrapped when a report element appears outside its parent
	ErrUnexpectedElement = errors.New("unexpected element")
)

// ReportNotFoundError is returned when no persisted report exists for a module configuration
type ReportNotFoundError struct {
	Module        ModuleID
	Configuration string
	Path          string
}

func (e *ReportNotFoundError) Error() string {
	return fmt.Sprintf("no report file found for %s %s: looked for %s", e.Module, e.Configuration, e.Path)
}

// MalformedDateError is returned when a revision publication date does not match the report date layout
type MalformedDateError struct {
	Organisation string
	Module       string
	Revision     string
	Value        string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("invalid publication date for %s %s %s: %q", e.Organisation, e.Module, e.Revision, e.Value)
}

// ReportFormatError wraps any failure to read a report document
type ReportFormatError struct {
	Path string
	Err  error
}

func (e *ReportFormatError) Error() string {
	return fmt.Sprintf("failed to parse report %s: %v", e.Path, e.Err)
}

func (e *ReportFormatError) Unwrap() error {
	return e.Err
}

// UnknownConfigurationError is returned when a configuration is absent from a live result
type UnknownConfigurationError struct {
	Configuration string
	Known         []string
}

func (e *UnknownConfigurationError) Error() string {
	return fmt.Sprintf("bad configuration provided: %s not found among [%s]", e.Configuration, strings.Join(e.Known, ", "))
}

// ReportSignatureError is returned when a persisted report fails signature verification
type ReportSignatureError struct {
	Path string
	Err  error
}

func (e *ReportSignatureError) Error() string {
	return fmt.Sprintf("report signature verification failed for %s: %v", e.Path, e.Err)
}

func (e *ReportSignatureError) Unwrap() error {
	return e.Err
}
