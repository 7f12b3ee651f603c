package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health and show the device in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			start := time.Now()
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}
			result.Device = cfg.Device
			result.LatencyMS = time.Since(start).Milliseconds()

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
