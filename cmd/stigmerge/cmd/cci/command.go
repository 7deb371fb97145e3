// Package cci provides the cci command for browsing the CCI list.
package cci

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/stigmerge/cmd/application"
	"github.com/agentstation/stigmerge/internal/cmd/emoji"
	"github.com/agentstation/stigmerge/internal/cmd/output"
	"github.com/agentstation/stigmerge/internal/cmd/table"
	pkgcci "github.com/agentstation/stigmerge/pkg/cci"
)

// NewCommand creates the cci command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cci [control]",
		GroupID: "reference",
		Short:   "List CCIs that map to a NIST control",
		Long: `List the Control Correlation Identifiers whose NIST SP 800-53 references
contain the given control text. This is the same match --filter uses, so
"stigmerge cci AC-2" shows exactly which CCIs "merge --filter AC-2" allows.

Matching is a case-sensitive substring test: "AC-1" also matches AC-10 and AC-17.`,
		Example: `  stigmerge cci SI
  stigmerge cci "SC-8 (1)" --format wide
  stigmerge cci update`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var control string
			if len(args) == 1 {
				control = args[0]
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			items := catalog.Match(control)
			if items == nil {
				items = []pkgcci.Item{}
			}
			app.Logger().Debug().
				Str("control", control).
				Int("matched", len(items)).
				Msg("Matched CCIs")

			format := output.DetectFormat(app.OutputFormat())
			w := cmd.OutOrStdout()
			if !format.IsTable() {
				return output.NewFormatter(format).Format(w, items)
			}

			if _, err := fmt.Fprintf(w, "%s %d of %d CCIs (list version %s)\n",
				emoji.Info, len(items), catalog.Len(), catalog.Metadata.Version); err != nil {
				return err
			}
			return output.NewFormatter(format).Format(w, table.CCIsToTableData(items, format == output.FormatWide))
		},
	}

	cmd.AddCommand(NewUpdateCommand(app))
	return cmd
}
