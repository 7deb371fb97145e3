// Package checklist models DISA STIG Viewer checklists (.ckl files).
//
// A Checklist holds an opaque ASSET block and an ordered list of STIGs
// (groups). Each STIG carries its STIG_INFO name/value pairs and an ordered
// list of VULN entries. The package reads and writes the XML form
// (Load, Decode, Save, Encode) and builds the lookup indexes the merge
// engine walks (BuildGroupIndex, BuildEntryIndex).
package checklist

import (
	"encoding/xml"
	"fmt"

	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// Checklist is the root <CHECKLIST> document.
type Checklist struct {
	XMLName xml.Name `xml:"CHECKLIST"`
	Asset   Asset    `xml:"ASSET"`
	Groups  []Group  `xml:"STIGS>iSTIG"`

	// Preamble holds comments found before the root element
	// (STIG Viewer writes its version there). Written back by Encode.
	Preamble []string `xml:"-"`
}

// Asset is the <ASSET> block. Its content is never interpreted; the
// inner XML is kept verbatim so host details round-trip untouched.
type Asset struct {
	Inner []byte `xml:",innerxml"`
}

// Group is one <iSTIG>: a technology-specific checklist.
type Group struct {
	Info  []SIData `xml:"STIG_INFO>SI_DATA"`
	Vulns []Vuln   `xml:"VULN"`
}

// SIData is a STIG_INFO name/value pair. Some names are written without data.
type SIData struct {
	Name string `xml:"SID_NAME"`
	Data Text   `xml:"SID_DATA"`
}

// Vuln is one <VULN> finding.
type Vuln struct {
	Data                  []StigData `xml:"STIG_DATA"`
	Status                Status     `xml:"STATUS"`
	FindingDetails        Text       `xml:"FINDING_DETAILS"`
	Comments              Text       `xml:"COMMENTS"`
	SeverityOverride      Text       `xml:"SEVERITY_OVERRIDE"`
	SeverityJustification Text       `xml:"SEVERITY_JUSTIFICATION"`
}

// StigData is a VULN attribute name/value pair.
type StigData struct {
	Attribute string `xml:"VULN_ATTRIBUTE"`
	Data      string `xml:"ATTRIBUTE_DATA"`
}

// ID returns the group's stigid. Exactly one non-empty stigid pair must exist.
func (g *Group) ID() (string, error) {
	var (
		id    string
		found int
	)
	for _, si := range g.Info {
		if si.Name != constants.StigIDName {
			continue
		}
		found++
		id = si.Data.String()
	}

	switch {
	case found == 0:
		return "", errors.NewSchemaError("", constants.StigIDName, "expected exactly one, found 0", errors.ErrMissingField)
	case found > 1:
		return "", errors.NewSchemaError("", constants.StigIDName, fmt.Sprintf("expected exactly one, found %d", found), errors.ErrMissingField)
	case id == "":
		return "", errors.NewSchemaError("", constants.StigIDName, "value is empty", errors.ErrMissingField)
	}
	return id, nil
}

// InfoValue returns the SID_DATA for name, if present.
func (g *Group) InfoValue(name string) (string, bool) {
	for _, si := range g.Info {
		if si.Name == name && si.Data.IsSet() {
			return si.Data.String(), true
		}
	}
	return "", false
}

// Attribute returns every ATTRIBUTE_DATA paired with the attribute name, in document order.
func (v *Vuln) Attribute(name string) []string {
	var values []string
	for _, d := range v.Data {
		if d.Attribute == name {
			values = append(values, d.Data)
		}
	}
	return values
}

// VulnNum returns the entry's unique Vuln_Num.
func (v *Vuln) VulnNum() (string, error) {
	nums := v.Attribute(constants.VulnNumAttribute)
	switch {
	case len(nums) != 1:
		return "", errors.NewSchemaError("", constants.VulnNumAttribute, fmt.Sprintf("expected exactly one, found %d", len(nums)), errors.ErrMissingField)
	case nums[0] == "":
		return "", errors.NewSchemaError("", constants.VulnNumAttribute, "value is empty", errors.ErrMissingField)
	}
	return nums[0], nil
}

// CCIRefs returns the entry's CCI references (possibly none).
func (v *Vuln) CCIRefs() []string {
	return v.Attribute(constants.CCIRefAttribute)
}

// Key returns the entry's composite key.
func (v *Vuln) Key() (EntryKey, error) {
	num, err := v.VulnNum()
	if err != nil {
		return EntryKey{}, err
	}
	return EntryKey{VulnNum: num, CCIRefs: v.CCIRefs()}, nil
}

// Validate checks every identity field the indexes depend on.
func (c *Checklist) Validate() error {
	for i := range c.Groups {
		g := &c.Groups[i]
		id, err := g.ID()
		if err != nil {
			return err
		}
		for j := range g.Vulns {
			v := &g.Vulns[j]
			if _, err := v.VulnNum(); err != nil {
				return errors.LocateSchema(err, "", id)
			}
			if !v.Status.Valid() {
				return errors.NewSchemaError(id, "STATUS", fmt.Sprintf("unknown status %q", v.Status), errors.ErrInvalidInput)
			}
		}
	}
	return nil
}
