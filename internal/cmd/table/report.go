// Package table converts domain results into rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/stigmerge/internal/cmd/emoji"
	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/merge"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ReportToTableData converts a merge report into one row per STIG,
// followed by skipped STIGs and a total row.
func ReportToTableData(report *merge.Report) Data {
	headers := []string{"", "STIG", "Entries", "Merged", "Unchanged", "Filtered", "Missing", "Unresolved"}
	align := []Align{AlignCenter, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}

	var rows [][]string
	if report.Stats == nil {
		return Data{Headers: headers, ColumnAlignment: align}
	}

	for _, g := range report.Stats.Groups {
		rows = append(rows, groupRow(groupSymbol(g), g))
	}
	for _, id := range report.Stats.SkippedGroups {
		rows = append(rows, []string{emoji.Warning, id, "-", "-", "-", "-", "-", "-"})
	}
	if len(report.Stats.Groups) > 1 {
		rows = append(rows, groupRow("", report.Stats.Totals()))
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

func groupSymbol(g merge.GroupStats) string {
	switch {
	case g.Missing > 0, g.Unresolved > 0:
		return emoji.Warning
	case g.Merged > 0:
		return emoji.Success
	default:
		return emoji.Optional
	}
}

func groupRow(symbol string, g merge.GroupStats) []string {
	return []string{
		symbol,
		g.ID,
		strconv.Itoa(g.Entries),
		strconv.Itoa(g.Merged),
		strconv.Itoa(g.Unchanged),
		strconv.Itoa(g.Filtered),
		strconv.Itoa(g.Missing),
		strconv.Itoa(g.Unresolved),
	}
}

// CCIsToTableData converts catalog items to table format. Wide output adds
// the definition column.
func CCIsToTableData(items []cci.Item, wide bool) Data {
	headers := []string{"CCI", "Controls", "Type", "Status"}
	if wide {
		headers = append(headers, "Definition")
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := []string{
			item.ID,
			strings.Join(item.Indexes(), ", "),
			strings.Join(item.Types, ", "),
			item.Status,
		}
		if wide {
			row = append(row, item.Definition)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}
