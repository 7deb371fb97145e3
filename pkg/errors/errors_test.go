package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/stigmerge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "vulnerability",
			ID:       "V-222387",
		}
		assert.Equal(t, "vulnerability with ID V-222387 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("stig", "Windows_10_STIG")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("source", "", "is required")
		assert.Equal(t, "validation failed for field source: is required", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "source and target are the same file"}
		assert.Equal(t, "validation failed: source and target are the same file", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("format", nil))
		err := pkgerrors.WrapValidation("format", errors.New("unknown format"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIOError(t *testing.T) {
	t.Run("read is a document error", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "/tmp/a.ckl", errors.New("no such file"))
		assert.Contains(t, err.Error(), "/tmp/a.ckl")
		assert.True(t, pkgerrors.IsDocumentError(err))
	})

	t.Run("write is not a document error", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "/tmp/a.merged.ckl", errors.New("disk full"))
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "write", ioErr.Operation)
		assert.False(t, pkgerrors.IsDocumentError(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("permission denied")
		err := pkgerrors.NewIOError("open", "/tmp/a.ckl", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestParseError(t *testing.T) {
	baseErr := errors.New("XML syntax error on line 3")
	err := pkgerrors.WrapParse("xml", "a.ckl", baseErr)
	assert.Contains(t, err.Error(), "a.ckl")
	assert.Contains(t, err.Error(), "line 3")
	assert.True(t, pkgerrors.IsDocumentError(err))
	assert.True(t, errors.Is(err, baseErr))

	assert.Nil(t, pkgerrors.WrapParse("xml", "a.ckl", nil))
}

func TestSchemaError(t *testing.T) {
	t.Run("with group", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("Windows_10_STIG", "Vuln_Num", "expected exactly one, found 0", pkgerrors.ErrMissingField)
		err.File = "a.ckl"
		assert.Equal(t, "schema error in a.ckl stig Windows_10_STIG: Vuln_Num: expected exactly one, found 0", err.Error())
		assert.True(t, pkgerrors.IsDocumentError(err))
		assert.True(t, errors.Is(err, pkgerrors.ErrMissingField))
	})

	t.Run("duplicate group", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("", "stigid", "duplicate value Windows_10_STIG", pkgerrors.ErrDuplicateGroup)
		assert.Equal(t, "schema error: stigid: duplicate value Windows_10_STIG", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateGroup))
	})
}

func TestLocateSchema(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		se := pkgerrors.NewSchemaError("", "Vuln_Num", "expected exactly one, found 0", pkgerrors.ErrMissingField)
		err := fmt.Errorf("indexing: %w", se)

		got := pkgerrors.LocateSchema(err, "target.ckl", "RHEL_8_STIG")
		assert.Same(t, err, got)
		assert.Equal(t, "target.ckl", se.File)
		assert.Equal(t, "RHEL_8_STIG", se.Group)
	})

	t.Run("keeps existing location", func(t *testing.T) {
		se := pkgerrors.NewSchemaError("Windows_10_STIG", "STATUS", "unknown status", pkgerrors.ErrInvalidInput)
		se.File = "a.ckl"

		_ = pkgerrors.LocateSchema(se, "b.ckl", "RHEL_8_STIG")
		assert.Equal(t, "a.ckl", se.File)
		assert.Equal(t, "Windows_10_STIG", se.Group)
	})

	t.Run("other errors", func(t *testing.T) {
		err := pkgerrors.WrapIO("open", "a.ckl", errors.New("denied"))
		assert.Same(t, err, pkgerrors.LocateSchema(err, "a.ckl", ""))
		assert.Nil(t, pkgerrors.LocateSchema(nil, "a.ckl", ""))
	})
}

func TestCatalogError(t *testing.T) {
	err := pkgerrors.WrapCatalog("embedded", errors.New("EOF"))
	assert.Contains(t, err.Error(), "embedded")
	assert.True(t, pkgerrors.IsCatalogUnavailable(err))
	assert.False(t, pkgerrors.IsDocumentError(err))
	assert.Nil(t, pkgerrors.WrapCatalog("embedded", nil))
}

func TestMergeError(t *testing.T) {
	base := pkgerrors.NewNotFoundError("vulnerability", "V-1")
	err := pkgerrors.NewMergeError("a.ckl", "b.ckl", "Windows_10_STIG", base)
	assert.Contains(t, err.Error(), "a.ckl")
	assert.Contains(t, err.Error(), "Windows_10_STIG")
	assert.True(t, pkgerrors.IsNotFound(err))

	noGroup := pkgerrors.NewMergeError("a.ckl", "b.ckl", "", errors.New("boom"))
	assert.NotContains(t, noGroup.Error(), "stig")
}
