package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <drafts|serviceLogs>",
		Short: "Export every record of a store to a file",
		Long: `Export every record of a store as csv, json or yaml.

The format comes from --format, or from the --output file extension when
--format is left at text. Without --output the export goes to stdout.`,
		Args:      storeArgs,
		ValidArgs: storeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := exportFormat(rootOpts.Format, output)
			if format == "text" {
				return NewExitError(ExitCommandError, "export needs --format csv, json or yaml")
			}

			app, err := open(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			s, err := pickStore(app, args[0])
			if err != nil {
				return err
			}
			records := s.List()

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return WrapExitError(ExitCommandError, "create output file", err)
				}
				defer f.Close()
				w = f
			}

			out := &OutputFormatter{Format: format, Writer: w}
			if err := out.Records(records); err != nil {
				return WrapExitError(ExitCommandError, "write export", err)
			}
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %d record(s) to %s\n", len(records), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

// exportFormat resolves the export format. An explicit --format wins;
// otherwise the output file extension decides.
func exportFormat(format, output string) string {
	if format != "text" {
		return format
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return "text"
}
