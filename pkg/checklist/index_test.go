package checklist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/stigmerge/pkg/checklist"
	"github.com/agentstation/stigmerge/pkg/errors"
)

func group(id string, nums ...string) checklist.Group {
	g := checklist.Group{Info: []checklist.SIData{{Name: "stigid", Data: checklist.NewText(id)}}}
	for _, n := range nums {
		g.Vulns = append(g.Vulns, checklist.Vuln{
			Data:   []checklist.StigData{{Attribute: "Vuln_Num", Data: n}, {Attribute: "CCI_REF", Data: "CCI-" + strings.TrimPrefix(n, "V-")}},
			Status: checklist.StatusNotReviewed,
		})
	}
	return g
}

func TestBuildGroupIndex(t *testing.T) {
	c := &checklist.Checklist{Groups: []checklist.Group{group("Z"), group("A"), group("M")}}

	idx, err := checklist.BuildGroupIndex(c)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"Z", "A", "M"}, idx.IDs(), "document order is preserved")

	g, ok := idx.Get("A")
	require.True(t, ok)
	assert.Same(t, &c.Groups[1], g, "index entries alias the checklist")

	_, ok = idx.Get("missing")
	assert.False(t, ok)
}

func TestBuildGroupIndex_Duplicate(t *testing.T) {
	c := &checklist.Checklist{Groups: []checklist.Group{group("A"), group("B"), group("A")}}

	_, err := checklist.BuildGroupIndex(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateGroup)
	assert.True(t, errors.IsDocumentError(err))
}

func TestGroupIndex_Values(t *testing.T) {
	c := &checklist.Checklist{Groups: []checklist.Group{group("A", "V-1"), group("B")}}
	idx, err := checklist.BuildGroupIndex(c)
	require.NoError(t, err)

	g, _ := idx.Get("A")
	g.Vulns[0].Status = checklist.StatusOpen

	values := idx.Values()
	require.Len(t, values, 2)
	assert.Equal(t, checklist.StatusOpen, values[0].Vulns[0].Status, "mutations through the index are visible")
}

func TestBuildEntryIndex(t *testing.T) {
	g := group("A", "V-3", "V-1", "V-2")

	idx, err := checklist.BuildEntryIndex(&g)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	keys := idx.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "V-3", keys[0].VulnNum)
	assert.Equal(t, []string{"CCI-3"}, keys[0].CCIRefs)
	assert.Equal(t, "V-2", keys[2].VulnNum)

	v, ok := idx.Get(checklist.EntryKey{VulnNum: "V-1"})
	require.True(t, ok)
	assert.Same(t, &g.Vulns[1], v)

	// lookup ignores CCI refs
	_, ok = idx.Get(checklist.EntryKey{VulnNum: "V-1", CCIRefs: []string{"CCI-999999"}})
	assert.True(t, ok)

	_, ok = idx.Get(checklist.EntryKey{VulnNum: "V-9"})
	assert.False(t, ok)
}

func TestBuildEntryIndex_Errors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		g := group("A", "V-1", "V-1")
		_, err := checklist.BuildEntryIndex(&g)
		assert.ErrorIs(t, err, errors.ErrDuplicateEntry)
	})

	t.Run("missing vuln num", func(t *testing.T) {
		g := group("A")
		g.Vulns = append(g.Vulns, checklist.Vuln{Status: checklist.StatusOpen})
		_, err := checklist.BuildEntryIndex(&g)
		assert.ErrorIs(t, err, errors.ErrMissingField)
	})

	t.Run("two vuln nums", func(t *testing.T) {
		g := group("A", "V-1")
		g.Vulns[0].Data = append(g.Vulns[0].Data, checklist.StigData{Attribute: "Vuln_Num", Data: "V-2"})
		_, err := checklist.BuildEntryIndex(&g)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found 2")
	})
}

func TestEntryIndex_ValuesOrder(t *testing.T) {
	g := group("A", "V-2", "V-1")
	idx, err := checklist.BuildEntryIndex(&g)
	require.NoError(t, err)

	values := idx.Values()
	require.Len(t, values, 2)
	num, err := values[0].VulnNum()
	require.NoError(t, err)
	assert.Equal(t, "V-2", num)
}
