package merge

import "github.com/agentstation/stigmerge/pkg/checklist"

// Change records which target fields Propagate assigned.
type Change struct {
	Status         bool `json:"status" yaml:"status"`
	FindingDetails bool `json:"finding_details" yaml:"finding_details"`
	Comments       bool `json:"comments" yaml:"comments"`
}

// Any reports whether anything was assigned.
func (c Change) Any() bool {
	return c.Status || c.FindingDetails || c.Comments
}

// Propagate copies review results from source into target.
//
// Nothing happens unless source has been reviewed and target either has not
// been reviewed or override is set. When that holds, the status is always
// copied, and each of FindingDetails and Comments is copied on its own when
// source has it set and target does not (or override is set). No other
// field of target is touched.
func Propagate(source, target *checklist.Vuln, override bool) Change {
	var change Change

	if !source.Status.Reviewed() || (target.Status.Reviewed() && !override) {
		return change
	}

	target.Status = source.Status
	change.Status = true

	if copyText(&source.FindingDetails, &target.FindingDetails, override) {
		change.FindingDetails = true
	}
	if copyText(&source.Comments, &target.Comments, override) {
		change.Comments = true
	}
	return change
}

func copyText(source, target *checklist.Text, override bool) bool {
	if !source.IsSet() || (target.IsSet() && !override) {
		return false
	}
	*target = *source
	return true
}
