// Package application provides test doubles for the command application interface.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/stigmerge/cmd/application"
	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/logging"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := merge.NewMergeCommand(mock)
type Mock struct {
	CatalogFunc      func() (*cci.Catalog, error)
	CCIListPathFunc  func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	StrictFunc       func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Catalog returns a catalog using the mock function or the embedded list.
func (m *Mock) Catalog() (*cci.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return cci.Load()
}

// CCIListPath returns the list path using the mock function or "".
func (m *Mock) CCIListPath() string {
	if m.CCIListPathFunc != nil {
		return m.CCIListPathFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Strict returns the strict default using the mock function or false.
func (m *Mock) Strict() bool {
	if m.StrictFunc != nil {
		return m.StrictFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ application.Application = (*Mock)(nil)
