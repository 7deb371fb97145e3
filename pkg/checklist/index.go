package checklist

import (
	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// GroupIndex maps stigid to group, preserving document order.
type GroupIndex struct {
	ids    []string
	groups map[string]*Group
}

// BuildGroupIndex indexes c's groups by stigid. Entries point into c.Groups.
func BuildGroupIndex(c *Checklist) (*GroupIndex, error) {
	idx := &GroupIndex{
		ids:    make([]string, 0, len(c.Groups)),
		groups: make(map[string]*Group, len(c.Groups)),
	}

	for i := range c.Groups {
		g := &c.Groups[i]
		id, err := g.ID()
		if err != nil {
			return nil, err
		}
		if _, dup := idx.groups[id]; dup {
			return nil, errors.NewSchemaError("", constants.StigIDName, "duplicate value "+id, errors.ErrDuplicateGroup)
		}
		idx.ids = append(idx.ids, id)
		idx.groups[id] = g
	}
	return idx, nil
}

// Get returns the group with the given stigid.
func (x *GroupIndex) Get(id string) (*Group, bool) {
	g, ok := x.groups[id]
	return g, ok
}

// Len returns the number of indexed groups.
func (x *GroupIndex) Len() int {
	return len(x.ids)
}

// IDs returns the stigids in document order.
func (x *GroupIndex) IDs() []string {
	return append([]string(nil), x.ids...)
}

// Values returns copies of the indexed groups in document order.
func (x *GroupIndex) Values() []Group {
	out := make([]Group, 0, len(x.ids))
	for _, id := range x.ids {
		out = append(out, *x.groups[id])
	}
	return out
}

// EntryKey identifies a vulnerability within a group. Only VulnNum takes
// part in lookup; CCIRefs rides along for control filtering.
type EntryKey struct {
	VulnNum string
	CCIRefs []string
}

// EntryIndex maps vulnerability keys to entries, preserving document order.
type EntryIndex struct {
	keys    []EntryKey
	entries map[string]*Vuln
}

// BuildEntryIndex indexes g's vulnerabilities. Entries point into g.Vulns.
func BuildEntryIndex(g *Group) (*EntryIndex, error) {
	idx := &EntryIndex{
		keys:    make([]EntryKey, 0, len(g.Vulns)),
		entries: make(map[string]*Vuln, len(g.Vulns)),
	}

	for i := range g.Vulns {
		v := &g.Vulns[i]
		key, err := v.Key()
		if err != nil {
			return nil, err
		}
		if _, dup := idx.entries[key.VulnNum]; dup {
			return nil, errors.NewSchemaError("", constants.VulnNumAttribute, "duplicate value "+key.VulnNum, errors.ErrDuplicateEntry)
		}
		idx.keys = append(idx.keys, key)
		idx.entries[key.VulnNum] = v
	}
	return idx, nil
}

// Get looks up an entry by key. CCIRefs are ignored.
func (x *EntryIndex) Get(key EntryKey) (*Vuln, bool) {
	v, ok := x.entries[key.VulnNum]
	return v, ok
}

// Len returns the number of indexed entries.
func (x *EntryIndex) Len() int {
	return len(x.keys)
}

// Keys returns the entry keys in document order.
func (x *EntryIndex) Keys() []EntryKey {
	return append([]EntryKey(nil), x.keys...)
}

// Values returns copies of the indexed entries in document order.
func (x *EntryIndex) Values() []Vuln {
	out := make([]Vuln, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, *x.entries[k.VulnNum])
	}
	return out
}
