package cci

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/stigmerge/internal/cmd/application"
	pkgcci "github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/errors"
)

const downloadedList = `<?xml version="1.0" encoding="utf-8"?>
<cci_list xmlns="http://iase.disa.mil/cci">
  <metadata><version>2024-12-16</version><publishdate>2024-12-16</publishdate></metadata>
  <cci_items>
    <cci_item id="CCI-001764">
      <status>draft</status>
      <type>technical</type>
      <references>
        <reference creator="NIST" title="NIST SP 800-53 Revision 4" version="4" index="CM-7 (2)" />
      </references>
    </cci_item>
  </cci_items>
</cci_list>`

func listServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestUpdateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".stigmerge", "U_CCI_List.xml")
	app := &application.Mock{CCIListPathFunc: func() string { return path }}

	out, err := execute(t, app, "update", "--url", listServer(t, http.StatusOK, downloadedList))
	require.NoError(t, err)
	assert.Contains(t, out, "Saved CCI list version 2024-12-16 (1 CCIs)")
	assert.Contains(t, out, path)

	catalog, err := pkgcci.LoadFile(path)
	require.NoError(t, err)
	_, ok := catalog.Lookup("CCI-001764")
	assert.True(t, ok)
}

func TestUpdateCommand_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xml")
	app := &application.Mock{CCIListPathFunc: func() string { return "/nonexistent/never-used.xml" }}

	_, err := execute(t, app, "update", "--url", listServer(t, http.StatusOK, downloadedList), "--output", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestUpdateCommand_Errors(t *testing.T) {
	t.Run("download keeps previous list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "U_CCI_List.xml")
		require.NoError(t, os.WriteFile(path, []byte("previous"), 0o600))
		app := &application.Mock{CCIListPathFunc: func() string { return path }}

		_, err := execute(t, app, "update", "--url", listServer(t, http.StatusServiceUnavailable, ""))
		require.Error(t, err)
		assert.True(t, errors.IsCatalogUnavailable(err))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})

	t.Run("no default location", func(t *testing.T) {
		_, err := execute(t, &application.Mock{}, "update", "--url", listServer(t, http.StatusOK, downloadedList))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("arguments", func(t *testing.T) {
		_, err := execute(t, &application.Mock{}, "update", "AC-2")
		assert.Error(t, err)
	})
}
