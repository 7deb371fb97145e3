package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/stigmerge/pkg/checklist"
	"github.com/agentstation/stigmerge/pkg/errors"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status   checklist.Status
		valid    bool
		reviewed bool
	}{
		{checklist.StatusOpen, true, true},
		{checklist.StatusNotAFinding, true, true},
		{checklist.StatusNotApplicable, true, true},
		{checklist.StatusNotReviewed, true, false},
		{"Closed", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.reviewed, tt.status.Reviewed())
		})
	}

	assert.Len(t, checklist.Statuses, 4)
}

func TestText(t *testing.T) {
	var zero checklist.Text
	assert.False(t, zero.IsSet())
	assert.Equal(t, checklist.Unset(), zero)

	empty := checklist.NewText("")
	v, ok := empty.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.NotEqual(t, zero, empty)

	assert.Equal(t, "x", checklist.NewText("x").String())
}

func TestGroup_ID(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		g := checklist.Group{Info: []checklist.SIData{{Name: "stigid", Data: checklist.NewText("")}}}
		_, err := g.ID()
		assert.ErrorIs(t, err, errors.ErrMissingField)
	})

	t.Run("unset value", func(t *testing.T) {
		g := checklist.Group{Info: []checklist.SIData{{Name: "stigid"}}}
		_, err := g.ID()
		assert.ErrorIs(t, err, errors.ErrMissingField)
	})

	t.Run("ambiguous", func(t *testing.T) {
		g := checklist.Group{Info: []checklist.SIData{
			{Name: "stigid", Data: checklist.NewText("A")},
			{Name: "stigid", Data: checklist.NewText("B")},
		}}
		_, err := g.ID()
		var se *errors.SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "stigid", se.Field)
		assert.Contains(t, se.Message, "found 2")
	})
}

func TestValidate_SetsGroup(t *testing.T) {
	c := &checklist.Checklist{Groups: []checklist.Group{group("A", "V-1")}}
	require.NoError(t, c.Validate())

	c.Groups[0].Vulns = append(c.Groups[0].Vulns, checklist.Vuln{Status: checklist.StatusOpen})
	err := c.Validate()
	var se *errors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "A", se.Group)
	assert.Equal(t, "Vuln_Num", se.Field)
}
