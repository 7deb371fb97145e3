package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/stigmerge/internal/cmd/emoji"
	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/merge"
)

func TestReportToTableData(t *testing.T) {
	report := &merge.Report{
		Stats: &merge.Stats{
			Groups: []merge.GroupStats{
				{ID: "A", Entries: 4, Merged: 2, Unchanged: 2},
				{ID: "B", Entries: 3, Unchanged: 2, Missing: 1},
				{ID: "D", Entries: 2, Unchanged: 1, Filtered: 1, Unresolved: 1},
			},
			SkippedGroups: []string{"C"},
		},
	}

	data := ReportToTableData(report)
	require.Len(t, data.Rows, 5)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))

	assert.Equal(t, []string{emoji.Success, "A", "4", "2", "2", "0", "0", "0"}, data.Rows[0])
	assert.Equal(t, emoji.Warning, data.Rows[1][0])
	assert.Equal(t, []string{emoji.Warning, "D", "2", "0", "1", "1", "0", "1"}, data.Rows[2])
	assert.Equal(t, []string{emoji.Warning, "C", "-", "-", "-", "-", "-", "-"}, data.Rows[3])
	assert.Equal(t, []string{"", "total", "9", "2", "5", "1", "1", "1"}, data.Rows[4])
}

func TestReportToTableData_NoStats(t *testing.T) {
	data := ReportToTableData(&merge.Report{})
	assert.Empty(t, data.Rows)
	assert.NotEmpty(t, data.Headers)
}

func TestCCIsToTableData(t *testing.T) {
	items := []cci.Item{{
		ID:         "CCI-002421",
		Status:     "draft",
		Definition: "cryptographic mechanisms",
		Types:      []string{"technical"},
		References: []cci.Reference{{Index: "SC-8 (1)"}, {Index: "SC-8 (1)"}},
	}}

	narrow := CCIsToTableData(items, false)
	assert.Equal(t, [][]string{{"CCI-002421", "SC-8 (1)", "technical", "draft"}}, narrow.Rows)

	wide := CCIsToTableData(items, true)
	assert.Len(t, wide.Headers, 5)
	assert.Equal(t, "cryptographic mechanisms", wide.Rows[0][4])
}
