// Package merge propagates review results between two STIG Viewer checklists.
//
// The Engine walks the source checklist STIG by STIG and vulnerability by
// vulnerability, copying status, finding details and comments into the
// matching target entries according to Propagate. STIGs or entries the
// target does not know are skipped. An optional control filter limits
// propagation to entries whose CCI references trace to a NIST control
// family, resolved through the CCI list.
package merge

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/checklist"
	"github.com/agentstation/stigmerge/pkg/errors"
	"github.com/agentstation/stigmerge/pkg/logging"
)

// Engine merges checklists. It holds no per-run state and may be reused.
type Engine struct {
	mode     Mode
	override bool
	filter   string
	strict   bool
	catalog  CatalogLoader
	observer Observer
}

// New creates an Engine with options.
func New(opts ...Option) (*Engine, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		mode:     options.mode,
		override: options.override,
		filter:   options.filter,
		strict:   options.strict,
		catalog:  options.catalog,
		observer: options.observer,
	}, nil
}

// Mode returns the engine's mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Merge propagates source into target and returns target. target is
// modified in place; on error it may be partially merged and must be discarded.
func (e *Engine) Merge(source, target *checklist.Checklist) (*checklist.Checklist, *Stats, error) {
	return e.merge("source", "target", source, target)
}

func (e *Engine) merge(sourceName, targetName string, source, target *checklist.Checklist) (*checklist.Checklist, *Stats, error) {
	stats := &Stats{MatchedCCIs: -1}

	filter, err := e.resolveFilter()
	if err != nil {
		return nil, nil, err
	}
	if filter != nil {
		stats.MatchedCCIs = filter.allowed.Len()
	}

	sourceGroups, err := checklist.BuildGroupIndex(source)
	if err != nil {
		return nil, nil, errors.LocateSchema(err, sourceName, "")
	}
	targetGroups, err := checklist.BuildGroupIndex(target)
	if err != nil {
		return nil, nil, errors.LocateSchema(err, targetName, "")
	}

	for _, id := range sourceGroups.IDs() {
		targetGroup, ok := targetGroups.Get(id)
		if !ok {
			e.observer.GroupSkipped(id, e.mode)
			stats.SkippedGroups = append(stats.SkippedGroups, id)
			continue
		}
		sourceGroup, _ := sourceGroups.Get(id)

		gs, err := e.mergeGroup(sourceName, targetName, id, sourceGroup, targetGroup, filter)
		if err != nil {
			return nil, nil, err
		}
		stats.Groups = append(stats.Groups, gs)
	}

	target.Groups = targetGroups.Values()
	return target, stats, nil
}

func (e *Engine) mergeGroup(sourceName, targetName, id string, sourceGroup, targetGroup *checklist.Group, filter *controlFilter) (GroupStats, error) {
	gs := GroupStats{ID: id}

	sourceEntries, err := checklist.BuildEntryIndex(sourceGroup)
	if err != nil {
		return gs, errors.LocateSchema(err, sourceName, id)
	}
	targetEntries, err := checklist.BuildEntryIndex(targetGroup)
	if err != nil {
		return gs, errors.LocateSchema(err, targetName, id)
	}

	e.observer.GroupStarted(id, sourceEntries.Len())

	for _, key := range sourceEntries.Keys() {
		gs.Entries++

		if filter != nil && !filter.allowed.ContainsAny(key.CCIRefs) {
			if unknown := filter.unknown(key.CCIRefs); len(unknown) > 0 {
				e.observer.EntryUnresolved(id, key.VulnNum, unknown)
				gs.Unresolved++
			}
			e.observer.EntryFiltered(id, key.VulnNum)
			gs.Filtered++
			continue
		}

		targetEntry, ok := targetEntries.Get(key)
		if !ok {
			if e.strict {
				return gs, errors.NewMergeError(sourceName, targetName, id, errors.NewNotFoundError("vulnerability", key.VulnNum))
			}
			e.observer.EntryMissing(id, key.VulnNum, e.mode)
			gs.Missing++
			continue
		}

		sourceEntry, _ := sourceEntries.Get(key)
		change := Propagate(sourceEntry, targetEntry, e.override)
		e.observer.EntryPropagated(id, key.VulnNum, change)
		if change.Any() {
			gs.Merged++
		} else {
			gs.Unchanged++
		}
	}

	targetGroup.Vulns = targetEntries.Values()
	return gs, nil
}

// controlFilter is a resolved control filter and the list it was resolved against.
type controlFilter struct {
	allowed cci.IDSet
	catalog *cci.Catalog
}

// unknown returns the refs the CCI list has no entry for.
func (f *controlFilter) unknown(refs []string) []string {
	var out []string
	for _, ref := range refs {
		if _, ok := f.catalog.Lookup(ref); !ok {
			out = append(out, ref)
		}
	}
	return out
}

// resolveFilter returns nil when no filter is configured. A filter that
// matches nothing yields an empty allowed set, which excludes every entry.
func (e *Engine) resolveFilter() (*controlFilter, error) {
	if e.filter == "" {
		return nil, nil
	}
	catalog, err := e.catalog()
	if err != nil {
		return nil, err
	}
	allowed := catalog.FilterByControlPrefix(e.filter)
	e.observer.FilterResolved(e.filter, allowed.Len())
	return &controlFilter{allowed: allowed, catalog: catalog}, nil
}

// Run loads both checklists, merges them and saves the result next to the
// target. Nothing is written unless every step succeeds.
func (e *Engine) Run(ctx context.Context, sourcePath, targetPath string) (*Report, error) {
	report := newReport(e, sourcePath, targetPath)
	ctx = logging.WithOperation(logging.WithRunID(ctx, report.RunID), e.mode.Name)
	logger := logging.FromContext(ctx)

	if err := checkPaths(sourcePath, targetPath, report.Output); err != nil {
		return nil, err
	}

	source, err := checklist.Load(sourcePath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", sourcePath).Int("stigs", len(source.Groups)).Msg("Loaded source checklist")

	target, err := checklist.Load(targetPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", targetPath).Int("stigs", len(target.Groups)).Msg("Loaded target checklist")

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	merged, stats, err := e.merge(sourcePath, targetPath, source, target)
	if err != nil {
		return nil, err
	}

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	if err := checklist.Save(merged, report.Output); err != nil {
		return nil, err
	}
	logger.Info().Str("path", report.Output).Msg("Saved checklist")

	report.finish(stats)
	return report, nil
}

func checkPaths(sourcePath, targetPath, output string) error {
	if sourcePath == "" {
		return errors.NewValidationError("source", sourcePath, "path is required")
	}
	if targetPath == "" {
		return errors.NewValidationError("target", targetPath, "path is required")
	}
	out := filepath.Clean(output)
	if out == filepath.Clean(sourcePath) || out == filepath.Clean(targetPath) {
		return errors.NewValidationError("output", output, "would overwrite an input checklist")
	}
	return nil
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}
	return nil
}
