package cli

import (
	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newMembershipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "membership",
		Short: "Membership tier commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tiers",
		Short: "List the membership tiers on sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TiersResponse

			if err := client.Get("/api/v1/membership/tiers", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "upgrade <tier>",
		Short: "Buy a membership tier for the session player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerResponse

			if err := client.Post("/api/v1/membership/upgrade", request.UpgradeRequest{Tier: args[0]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			// the server answers 204 when nobody is logged in
			if result.Player.ID == "" {
				out.PrintMessage("No player is logged in, nothing upgraded")
				return nil
			}
			out.Print(result)
			return nil
		},
	})

	return cmd
}
