// Package merge provides the merge and copy commands. Both run the same
// engine; they differ in the name of the target flag, the output file tag
// and the wording of skip messages.
package merge

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/stigmerge/cmd/application"
	"github.com/agentstation/stigmerge/internal/cmd/emoji"
	"github.com/agentstation/stigmerge/internal/cmd/output"
	"github.com/agentstation/stigmerge/internal/cmd/table"
	"github.com/agentstation/stigmerge/pkg/logging"
	pkgmerge "github.com/agentstation/stigmerge/pkg/merge"
)

// targetFlag describes the flag naming the checklist that receives results.
type targetFlag struct {
	name      string
	shorthand string
	usage     string
}

// options holds the parsed flags of one invocation.
type options struct {
	source   string
	target   string
	override bool
	filter   string
	strict   bool
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(app application.Application) *cobra.Command {
	cmd := newCommand(app, pkgmerge.ModeMerge, targetFlag{
		name:      "master",
		shorthand: "m",
		usage:     "master checklist receiving the review results",
	})
	cmd.Short = "Merge review results from a source checklist into a master checklist"
	cmd.Example = `  stigmerge merge -s team-a.ckl -m master.ckl
  stigmerge merge -s team-a.ckl -m master.ckl --filter AC-2 --override`
	return cmd
}

// NewCopyCommand creates the copy command.
func NewCopyCommand(app application.Application) *cobra.Command {
	cmd := newCommand(app, pkgmerge.ModeCopy, targetFlag{
		name:      "target",
		shorthand: "t",
		usage:     "target checklist receiving the review results",
	})
	cmd.Short = "Copy review results from a source checklist into a target checklist"
	cmd.Example = `  stigmerge copy -s old-release.ckl -t new-release.ckl
  stigmerge copy -s old-release.ckl -t new-release.ckl -f SI --strict`
	return cmd
}

func newCommand(app application.Application, mode pkgmerge.Mode, target targetFlag) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     mode.Name,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Long: fmt.Sprintf(`For every STIG present in both checklists, each vulnerability reviewed in the
source (status other than Not_Reviewed) is copied into the %[1]s when the %[1]s
entry is still Not_Reviewed. Finding details and comments are copied only when
the %[1]s has never set them. --override lifts both restrictions.

STIGs and vulnerabilities the %[1]s does not contain are skipped. The result
is written next to the %[1]s as <name>.%[2]s.ckl.`, target.name, mode.Tag),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = app.Strict()
			}
			return run(cmd, app, mode, target, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "source checklist holding the review results")
	cmd.Flags().StringVarP(&opts.target, target.name, target.shorthand, "", target.usage)
	cmd.Flags().BoolVarP(&opts.override, "override", "o", false, "overwrite reviewed statuses and existing text in the "+target.name)
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "only propagate entries whose CCIs map to this NIST control (e.g. AC-2, SI)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a source vulnerability is missing from the "+target.name)

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired(target.name)
	_ = cmd.MarkFlagFilename("source", "ckl")
	_ = cmd.MarkFlagFilename(target.name, "ckl")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, mode pkgmerge.Mode, target targetFlag, opts *options) error {
	logger := app.Logger()
	title := cases.Title(language.English).String(mode.Name)

	engine, err := pkgmerge.New(
		pkgmerge.WithMode(mode),
		pkgmerge.WithOverride(opts.override),
		pkgmerge.WithControlFilter(opts.filter),
		pkgmerge.WithStrict(opts.strict),
		pkgmerge.WithCatalog(app.Catalog),
		pkgmerge.WithObserver(pkgmerge.NewLogObserver(logger)),
	)
	if err != nil {
		return err
	}

	logger.Info().
		Str("source", opts.source).
		Str(target.name, opts.target).
		Bool("override", opts.override).
		Str("filter", opts.filter).
		Msgf("Starting %s", mode.Name)

	ctx := logging.WithLogger(cmd.Context(), logger)
	report, err := engine.Run(ctx, opts.source, opts.target)
	if err != nil {
		logger.Error().Err(err).Msgf("%s failed", title)
		return err
	}

	logger.Info().
		Str("output", report.Output).
		Dur("elapsed", report.Duration()).
		Msgf("%s succeeded", title)

	return printReport(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), report)
}

func printReport(w io.Writer, format output.Format, report *pkgmerge.Report) error {
	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, report)
	}

	totals := report.Stats.Totals()
	if _, err := fmt.Fprintf(w, "%s %d of %d entries from %s written to %s\n",
		emoji.Success, totals.Merged, totals.Entries, filepath.Base(report.Source), report.Output); err != nil {
		return err
	}
	return output.NewFormatter(format).Format(w, table.ReportToTableData(report))
}
