package cci

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/stigmerge/cmd/application"
	"github.com/agentstation/stigmerge/internal/cmd/emoji"
	pkgcci "github.com/agentstation/stigmerge/pkg/cci"
	"github.com/agentstation/stigmerge/pkg/constants"
	"github.com/agentstation/stigmerge/pkg/errors"
)

// NewUpdateCommand creates the cci update subcommand.
func NewUpdateCommand(app application.Application) *cobra.Command {
	var output, url string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download the current DISA CCI list",
		Long: `Download the CCI list DISA publishes and save it where stigmerge looks
for it. Once saved it replaces the embedded copy for merge --filter and the
cci command. The download is parsed before anything is written, so a failed
update leaves the previous list in place.`,
		Example: `  stigmerge cci update
  stigmerge cci update --output ./U_CCI_List.xml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = app.CCIListPath()
			}
			if output == "" {
				return errors.NewValidationError("output", output, "no default location, set --output")
			}

			logger := app.Logger()
			logger.Info().Str("url", url).Msg("Downloading CCI list")

			fetcher := pkgcci.NewFetcher()
			fetcher.URL = url
			data, catalog, err := fetcher.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			if err := pkgcci.Save(output, data); err != nil {
				return err
			}

			logger.Info().
				Str("path", output).
				Str("version", catalog.Metadata.Version).
				Int("items", catalog.Len()).
				Msg("Saved CCI list")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Saved CCI list version %s (%d CCIs) to %s\n",
				emoji.Success, catalog.Metadata.Version, catalog.Len(), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "where to save the list (default: cci_list setting or ~/.stigmerge/"+constants.CCIListFile+")")
	cmd.Flags().StringVar(&url, "url", constants.CCIListURL, "CCI list archive or XML to download")

	return cmd
}
