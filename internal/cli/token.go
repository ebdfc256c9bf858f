package cli

import (
	"fmt"
	"time"

	"github.com/mehrbod2002/brokerdb/internal/middleware"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token for the serve API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.UsesDefaultJWTSecret() {
				app.Logger.Warn().Msg("Signing with the default JWT_SECRET; serve will not accept it")
			}
			token, err := middleware.IssueAdminToken(app.Config.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.Out, token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
