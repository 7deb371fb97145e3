// Package cci reads the DISA Control Correlation Identifier (CCI) list and
// resolves control-family prefixes such as "AC-2" or "SI" into the set of
// CCI ids that trace to them.
package cci

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/agentstation/stigmerge/internal/embedded"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// EmbeddedSource names the list compiled into the binary in errors and logs.
const EmbeddedSource = "embedded"

// Catalog is a parsed CCI list. It is not modified after Parse returns.
type Catalog struct {
	XMLName  xml.Name `xml:"http://iase.disa.mil/cci cci_list"`
	Metadata Metadata `xml:"metadata"`
	Items    []Item   `xml:"cci_items>cci_item"`

	byID map[string]int
}

// Metadata describes the list release.
type Metadata struct {
	Version     string `xml:"version"`
	PublishDate string `xml:"publishdate"`
}

// Item is a single CCI.
type Item struct {
	ID          string      `xml:"id,attr" json:"id" yaml:"id"`
	Status      string      `xml:"status" json:"status" yaml:"status"`
	PublishDate string      `xml:"publishdate" json:"publish_date" yaml:"publish_date"`
	Contributor string      `xml:"contributor" json:"contributor" yaml:"contributor"`
	Definition  string      `xml:"definition" json:"definition" yaml:"definition"`
	Types       []string    `xml:"type" json:"types" yaml:"types"`
	References  []Reference `xml:"references>reference" json:"references" yaml:"references"`
}

// Reference ties a CCI to a control in a published framework.
type Reference struct {
	Creator  string `xml:"creator,attr" json:"creator" yaml:"creator"`
	Title    string `xml:"title,attr" json:"title" yaml:"title"`
	Version  string `xml:"version,attr" json:"version" yaml:"version"`
	Location string `xml:"location,attr" json:"location,omitempty" yaml:"location,omitempty"`
	Index    string `xml:"index,attr" json:"index" yaml:"index"`
}

// Load parses the list embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(bytes.NewReader(embedded.CCIList), EmbeddedSource)
}

// LoadFile parses a CCI list from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapCatalog(path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	return Parse(bufio.NewReader(f), path)
}

// Parse decodes a CCI list from r. name identifies the source in errors.
func Parse(r io.Reader, name string) (*Catalog, error) {
	var c Catalog
	if err := xml.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.WrapCatalog(name, err)
	}
	if len(c.Items) == 0 {
		return nil, errors.NewCatalogError(name, errors.New("list contains no cci_item elements"))
	}

	c.byID = make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		c.byID[item.ID] = i
	}
	return &c, nil
}

// Len returns the number of items in the list.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.Items[i], true
}

// Match returns, in list order, every item with at least one reference
// whose index contains prefix. Matching is a case-sensitive substring test,
// so "AC-1" also matches "AC-10" and "AC-17 (2)".
func (c *Catalog) Match(prefix string) []Item {
	var items []Item
	for _, item := range c.Items {
		if references(item.References).matches(prefix) {
			items = append(items, item)
		}
	}
	return items
}

// FilterByControlPrefix returns the ids of every item Match selects.
// A prefix that matches nothing yields an empty set.
func (c *Catalog) FilterByControlPrefix(prefix string) IDSet {
	set := make(IDSet)
	for _, item := range c.Match(prefix) {
		set[item.ID] = struct{}{}
	}
	return set
}

// Indexes returns the distinct control indexes the item references.
func (i Item) Indexes() []string {
	seen := make(map[string]bool, len(i.References))
	var out []string
	for _, ref := range i.References {
		if ref.Index == "" || seen[ref.Index] {
			continue
		}
		seen[ref.Index] = true
		out = append(out, ref.Index)
	}
	return out
}

type references []Reference

func (refs references) matches(prefix string) bool {
	for _, ref := range refs {
		if strings.Contains(ref.Index, prefix) {
			return true
		}
	}
	return false
}
