package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/servicelog/internal/domain"
)

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:       "clear <drafts|serviceLogs>",
		Short:     "Remove every record from a store",
		Args:      storeArgs,
		ValidArgs: storeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, fmt.Sprintf("refusing to clear %s without --yes", args[0]))
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
			if err := s.ClearAll(cmd.Context()); err != nil {
				return WrapExitError(ExitCommandError, "clear "+args[0], err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Status(domain.StatusCleared, nil)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm removing every record")
	return cmd
}
