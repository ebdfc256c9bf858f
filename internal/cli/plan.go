package cli

import (
	"encoding/json"

	"github.com/mehrbod2002/brokerdb/internal/schema"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the validators, indexes and seed symbols as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.DefaultPlan(app.Config.Database).Describe()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(app.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
}
