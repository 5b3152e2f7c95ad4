package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/service"
)

// NewSubmitCommand creates the submit command, the command-line counterpart
// of the compose form.
func NewSubmitCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var form domain.ServiceLogForm

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Add a service log from the compose form fields",
		Long: `Add a record to the serviceLogs store. Every field is required except
--end-date, which defaults to the day after --start-date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context(), rootOpts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			created, status, err := service.NewFormService(app.ServiceLogs).Submit(cmd.Context(), form)
			if err != nil {
				if errors.Is(err, domain.ErrValidation) {
					_ = out.Status(status, nil)
					return WrapExitError(ExitFailure, status, err)
				}
				return WrapExitError(ExitCommandError, "submit", err)
			}
			return out.Status(status, &created)
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.ProviderID, "provider-id", "", "service provider id")
	f.StringVar(&form.ServiceOrder, "service-order", "", "service order number")
	f.StringVar(&form.TruckID, "truck-id", "", "truck id")
	f.StringVar(&form.Odometer, "odometer", "", "odometer reading")
	f.StringVar(&form.EngineHours, "engine-hours", "", "engine hours")
	f.StringVar(&form.StartDate, "start-date", "", "start date (YYYY-MM-DD)")
	f.StringVar(&form.EndDate, "end-date", "", "end date (YYYY-MM-DD)")
	f.StringVar(&form.Type, "type", string(domain.ServicePlanned), "service type (planned|unplanned|emergency)")
	f.StringVar(&form.ServiceDescription, "description", "", "what was done")
	return cmd
}
