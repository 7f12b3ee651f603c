package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newWardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wards",
		Short: "Ward and league table commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the wards and sub-counties",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WardsResponse

			if err := client.Get("/api/v1/wards", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "standings <ward>",
		Short: "Show a ward's league table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.StandingsResponse

			if err := client.Get("/api/v1/wards/"+url.PathEscape(args[0])+"/standings", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
