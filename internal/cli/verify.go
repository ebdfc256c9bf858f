package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

var ErrDrift = errors.New("database does not match the plan")

func newVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare the live database with the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := app.connect(ctx)
			if err != nil {
				return err
			}
			defer app.disconnect(client)

			report, err := app.services(client).bootstrap.Verify(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(app.Out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if !report.InSync() {
				return ErrDrift
			}
			app.Logger.Info().Msg("Database matches the plan")
			return nil
		},
	}
}
