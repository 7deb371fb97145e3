package checklist

// Status is the review outcome of a vulnerability.
type Status string

// Status values as written by STIG Viewer.
const (
	StatusOpen          Status = "Open"
	StatusNotAFinding   Status = "NotAFinding"
	StatusNotApplicable Status = "Not_Applicable"
	StatusNotReviewed   Status = "Not_Reviewed"
)

// Statuses lists every valid status in STIG Viewer display order.
var Statuses = []Status{StatusOpen, StatusNotAFinding, StatusNotApplicable, StatusNotReviewed}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusNotAFinding, StatusNotApplicable, StatusNotReviewed:
		return true
	}
	return false
}

// Reviewed reports whether an assessment outcome has been recorded.
func (s Status) Reviewed() bool {
	return s != StatusNotReviewed
}

func (s Status) String() string {
	return string(s)
}
