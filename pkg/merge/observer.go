package merge

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/stigmerge/pkg/logging"
)

// Observer receives the engine's decisions as it walks the source document.
// Implementations must not modify the checklists.
type Observer interface {
	// FilterResolved reports the CCI ids a control filter expanded to.
	FilterResolved(filter string, matched int)
	// GroupSkipped reports a source STIG absent from the target.
	GroupSkipped(groupID string, mode Mode)
	// GroupStarted reports a STIG present in both documents.
	GroupStarted(groupID string, entries int)
	// EntryFiltered reports an entry excluded by the control filter.
	EntryFiltered(groupID, vulnNum string)
	// EntryUnresolved reports an entry whose CCI references are absent
	// from the CCI list, so the control filter cannot place them.
	EntryUnresolved(groupID, vulnNum string, ccis []string)
	// EntryMissing reports a source entry absent from the target STIG.
	EntryMissing(groupID, vulnNum string, mode Mode)
	// EntryPropagated reports the outcome of Propagate for one entry.
	EntryPropagated(groupID, vulnNum string, change Change)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) FilterResolved(string, int)               {}
func (NopObserver) GroupSkipped(string, Mode)                {}
func (NopObserver) GroupStarted(string, int)                 {}
func (NopObserver) EntryFiltered(string, string)             {}
func (NopObserver) EntryUnresolved(string, string, []string) {}
func (NopObserver) EntryMissing(string, string, Mode)        {}
func (NopObserver) EntryPropagated(string, string, Change)   {}

// LogObserver writes engine events to a zerolog logger.
type LogObserver struct {
	logger *zerolog.Logger
}

// NewLogObserver returns an observer logging to logger, or to the
// package default logger when logger is nil.
func NewLogObserver(logger *zerolog.Logger) *LogObserver {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogObserver{logger: logger}
}

// FilterResolved implements Observer.
func (o *LogObserver) FilterResolved(filter string, matched int) {
	ev := o.logger.Info()
	if matched == 0 {
		ev = o.logger.Warn()
	}
	ev.Str("filter", filter).
		Int("cci_count", matched).
		Msg("Resolved control filter")
}

// GroupSkipped implements Observer.
func (o *LogObserver) GroupSkipped(groupID string, mode Mode) {
	o.logger.Warn().
		Str("stig_id", groupID).
		Msgf("%s checklist does not have STIG, skipping", mode.SkipLabel)
}

// GroupStarted implements Observer.
func (o *LogObserver) GroupStarted(groupID string, entries int) {
	o.logger.Info().
		Str("stig_id", groupID).
		Int("entries", entries).
		Msg("Merging STIG")
}

// EntryFiltered implements Observer.
func (o *LogObserver) EntryFiltered(groupID, vulnNum string) {
	o.logger.Trace().
		Str("stig_id", groupID).
		Str("vuln_num", vulnNum).
		Msg("Entry outside control filter")
}

// EntryUnresolved implements Observer.
func (o *LogObserver) EntryUnresolved(groupID, vulnNum string, ccis []string) {
	o.logger.Warn().
		Str("stig_id", groupID).
		Str("vuln_num", vulnNum).
		Strs("cci_refs", ccis).
		Msg("CCI not in CCI list, entry filtered")
}

// EntryMissing implements Observer.
func (o *LogObserver) EntryMissing(groupID, vulnNum string, mode Mode) {
	o.logger.Warn().
		Str("stig_id", groupID).
		Str("vuln_num", vulnNum).
		Msgf("%s checklist does not have vulnerability, skipping", mode.SkipLabel)
}

// EntryPropagated implements Observer.
func (o *LogObserver) EntryPropagated(groupID, vulnNum string, change Change) {
	if !change.Any() {
		return
	}
	o.logger.Debug().
		Str("stig_id", groupID).
		Str("vuln_num", vulnNum).
		Bool("finding_details", change.FindingDetails).
		Bool("comments", change.Comments).
		Msg("Propagated review")
}
