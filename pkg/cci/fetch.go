package cci

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// Fetcher downloads the published CCI list.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// NewFetcher returns a Fetcher for the DISA download location.
func NewFetcher() *Fetcher {
	return &Fetcher{
		URL:    constants.CCIListURL,
		Client: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// Fetch downloads the list and parses it. The response may be the zip
// archive DISA publishes or a bare XML document. The returned bytes are the
// XML as published, ready for Save.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, *Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, nil, errors.WrapCatalog(f.URL, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, nil, errors.WrapCatalog(f.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.NewCatalogError(f.URL, fmt.Errorf("unexpected response %s", resp.Status))
	}

	body, err := readLimited(resp.Body)
	if err != nil {
		return nil, nil, errors.WrapCatalog(f.URL, err)
	}

	data := body
	if isZip(body) {
		if data, err = extract(body); err != nil {
			return nil, nil, errors.WrapCatalog(f.URL, err)
		}
	}

	catalog, err := Parse(bytes.NewReader(data), f.URL)
	if err != nil {
		return nil, nil, err
	}
	return data, catalog, nil
}

// Save writes a downloaded list to path, creating its directory. The file
// is replaced atomically so a failed write leaves any previous list intact.
func Save(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cci-*.xml")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("move", path, err)
	}
	return nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, constants.MaxCCIListSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > constants.MaxCCIListSize {
		return nil, errors.New("cci list exceeds size limit")
	}
	return data, nil
}

func isZip(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

// extract returns the list from a DISA archive. Later releases nest it in a
// directory, so entries are matched by base name.
func extract(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, file := range zr.File {
		if !strings.EqualFold(path.Base(file.Name), constants.CCIListFile) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return readLimited(rc)
	}
	return nil, fmt.Errorf("archive has no %s", constants.CCIListFile)
}
