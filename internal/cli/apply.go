package cli

import (
	"context"

	"github.com/mehrbod2002/brokerdb/internal/config"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Create validators, indexes and seed symbols",
		Long: `Apply runs the bootstrap sequence once and stops at the first error:

  1. create users, symbols and orders with their validators
  2. create the indexes of all seven collections
  3. insert the seed symbols (AAPL, GOOGL, MSFT, TSLA, AMZN)

A rerun against a seeded database fails unless --seed-mode is
skip-existing or none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApply(cmd.Context())
		},
	}
}

func (a *App) runApply(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer a.disconnect(client)

	svc := a.services(client)
	if _, err := svc.bootstrap.Apply(ctx); err != nil {
		return err
	}

	if _, err := config.EnsureAdminUser(ctx, svc.userRepo, a.Config, a.Logger); err != nil {
		return err
	}
	return nil
}
