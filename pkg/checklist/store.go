package checklist

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// Load reads and validates the checklist at path.
func Load(path string) (*Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	return Decode(bufio.NewReader(f), path)
}

// Decode parses a checklist from r. name is used in error messages.
func Decode(r io.Reader, name string) (*Checklist, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		c        Checklist
		preamble []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.NewParseError("xml", name, "no CHECKLIST element", err)
		}
		if err != nil {
			return nil, errors.WrapParse("xml", name, err)
		}

		switch t := tok.(type) {
		case xml.Comment:
			preamble = append(preamble, string(t))
		case xml.StartElement:
			if t.Name.Local != "CHECKLIST" {
				return nil, errors.NewParseError("xml", name, "root element is "+t.Name.Local+", want CHECKLIST", nil)
			}
			if err := dec.DecodeElement(&c, &t); err != nil {
				return nil, errors.WrapParse("xml", name, err)
			}
			c.Preamble = preamble
			if err := c.Validate(); err != nil {
				return nil, errors.LocateSchema(err, name, "")
			}
			return &c, nil
		}
	}
}

// Save writes c to path. The document is written to a temporary sibling
// and renamed into place, so path never holds a partial checklist.
func Save(c *Checklist, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, c); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := bw.Flush(); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Chmod(constants.FilePermissions); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// charsetReader decodes non-UTF-8 checklists, which older STIG Viewer
// exports declare as ISO-8859-1 or windows-1252.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, errors.New("unsupported charset " + label)
	}
	return enc.NewDecoder().Reader(input), nil
}
