package merge

// GroupStats counts what happened to one STIG's source entries.
type GroupStats struct {
	ID        string `json:"stig_id" yaml:"stig_id"`
	Entries   int    `json:"entries" yaml:"entries"`
	Merged    int    `json:"merged" yaml:"merged"`
	Unchanged int    `json:"unchanged" yaml:"unchanged"`
	Filtered  int    `json:"filtered" yaml:"filtered"`
	Missing   int    `json:"missing" yaml:"missing"`
	// Unresolved counts filtered entries carrying a CCI the list lacks.
	Unresolved int `json:"unresolved" yaml:"unresolved"`
}

// Stats summarizes a merge.
type Stats struct {
	Groups        []GroupStats `json:"groups" yaml:"groups"`
	SkippedGroups []string     `json:"skipped_groups,omitempty" yaml:"skipped_groups,omitempty"`
	// MatchedCCIs is the size of the resolved control filter, or -1 when unfiltered.
	MatchedCCIs int `json:"matched_ccis" yaml:"matched_ccis"`
}

// Totals sums the per-group counters.
func (s *Stats) Totals() GroupStats {
	total := GroupStats{ID: "total"}
	for _, g := range s.Groups {
		total.Entries += g.Entries
		total.Merged += g.Merged
		total.Unchanged += g.Unchanged
		total.Filtered += g.Filtered
		total.Missing += g.Missing
		total.Unresolved += g.Unresolved
	}
	return total
}

// Group returns the counters for a STIG.
func (s *Stats) Group(id string) (GroupStats, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return GroupStats{}, false
}
