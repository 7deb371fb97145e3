// Package errors provides custom error types for the stigmerge system.
// These errors enable programmatic error checking at the CLI boundary
// and carry enough context (path, group, vulnerability) for useful logs.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the stigmerge system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocument indicates a checklist could not be read or is missing identity fields
	ErrDocument = errors.New("checklist document error")

	// ErrDuplicateGroup indicates two STIGs in one checklist share a stigid
	ErrDuplicateGroup = errors.New("duplicate stig id")

	// ErrDuplicateEntry indicates two vulnerabilities in one STIG share a Vuln_Num
	ErrDuplicateEntry = errors.New("duplicate vulnerability number")

	// ErrMissingField indicates a required identity field is absent
	ErrMissingField = errors.New("missing required field")

	// ErrCatalogUnavailable indicates the CCI reference list could not be loaded
	ErrCatalogUnavailable = errors.New("cci catalog unavailable")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "xml", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrDocument
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. Read-side failures are document errors.
func (e *IOError) Is(target error) bool {
	return target == ErrDocument && (e.Operation == "read" || e.Operation == "open")
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// SchemaError represents a checklist that parsed but cannot be indexed:
// a missing or ambiguous stigid / Vuln_Num, or duplicate identities.
type SchemaError struct {
	File    string
	Group   string
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	where := e.File
	if e.Group != "" {
		if where != "" {
			where += " "
		}
		where += "stig " + e.Group
	}
	if where != "" {
		return fmt.Sprintf("schema error in %s: %s: %s", where, e.Field, e.Message)
	}
	return fmt.Sprintf("schema error: %s: %s", e.Field, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrDocument
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(group, field, message string, err error) *SchemaError {
	return &SchemaError{
		Group:   group,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// CatalogError represents a failure to load the CCI reference list
type CatalogError struct {
	Source string // "embedded" or a file path
	Err    error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	return fmt.Sprintf("cci catalog unavailable (%s): %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(source string, err error) *CatalogError {
	return &CatalogError{Source: source, Err: err}
}

// LocateSchema fills in the File and Group of a SchemaError anywhere in
// err's chain, leaving fields that are already set. Empty arguments are
// ignored. err is returned unchanged.
func LocateSchema(err error, file, group string) error {
	var se *SchemaError
	if !errors.As(err, &se) {
		return err
	}
	if se.File == "" {
		se.File = file
	}
	if se.Group == "" {
		se.Group = group
	}
	return err
}

// MergeError represents an error during a checklist merge
type MergeError struct {
	Source string
	Target string
	Group  string
	Err    error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("merge error between %s and %s in stig %s: %v", e.Source, e.Target, e.Group, e.Err)
	}
	return fmt.Sprintf("merge error between %s and %s: %v", e.Source, e.Target, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(source, target, group string, err error) *MergeError {
	return &MergeError{
		Source: source,
		Target: target,
		Group:  group,
		Err:    err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDocumentError checks if an error means a checklist could not be read or indexed
func IsDocumentError(err error) bool {
	return errors.Is(err, ErrDocument)
}

// IsCatalogUnavailable checks if an error is a CCI catalog load failure
func IsCatalogUnavailable(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapCatalog wraps an error as a CatalogError
func WrapCatalog(source string, err error) error {
	if err == nil {
		return nil
	}
	return NewCatalogError(source, err)
}
