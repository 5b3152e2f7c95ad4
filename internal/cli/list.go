package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/servicelog/internal/search"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list <drafts|serviceLogs>",
		Short: "List the records of a store",
		Long: `List the records of a store in their stored order.

--search keeps only records whose provider id, service order or truck id
contains the query, ignoring case.`,
		Args:      storeArgs,
		ValidArgs: storeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			s, err := pickStore(app, args[0])
			if err != nil {
				return err
			}
			records := search.Filter(s.List(), query)

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Records(records)
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "only list records matching this query")
	return cmd
}
