package cli

import (
	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/response"
	"github.com/kefmc/tournament-engine/internal/services/standings"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin console commands (needs --admin-key)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Show tournament totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result standings.Overview

			if err := client.Get("/api/v1/admin/overview", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "players",
		Short: "List every player on the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayersResponse

			if err := client.Get("/api/v1/admin/players", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
