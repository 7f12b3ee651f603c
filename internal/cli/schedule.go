package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Match schedule commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the session player's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ScheduleResponse

			if err := client.Get("/api/v1/players/me/schedule", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "complete <entry-id>",
		Short: "Mark a scheduled match as played",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.EntryResponse

			path := "/api/v1/players/me/schedule/" + url.PathEscape(args[0]) + "/complete"
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
