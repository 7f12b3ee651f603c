package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newDonationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "Donations wall commands",
	}

	cmd.AddCommand(newDonationsListCmd())
	cmd.AddCommand(newDonationsGiveCmd())

	return cmd
}

func newDonationsListCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the donations wall",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.DonationsResponse

			path := "/api/v1/donations"
			if recent > 0 {
				path = fmt.Sprintf("%s?recent=%d", path, recent)
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Number of recent donations (default: server default)")

	return cmd
}

func newDonationsGiveCmd() *cobra.Command {
	var req request.DonateRequest

	cmd := &cobra.Command{
		Use:   "give",
		Short: "Donate to the tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.DonationResponse

			if err := client.Post("/api/v1/donations", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Donor name (blank donates anonymously)")
	cmd.Flags().IntVar(&req.Amount, "amount", 0, "Amount in KES (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
