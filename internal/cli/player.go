package cli

import (
	"github.com/spf13/cobra"

	"github.com/kefmc/tournament-engine/internal/api/request"
	"github.com/kefmc/tournament-engine/internal/api/response"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registration and session commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerLogoutCmd())
	cmd.AddCommand(newPlayerMeCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var req request.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register into a ward and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerResponse

			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.UserID, "user", "", "In-game user id (required)")
	cmd.Flags().StringVar(&req.Ward, "ward", "", "Ward (required)")
	cmd.Flags().StringVar(&req.SubCounty, "sub-county", "", "Sub-county")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("ward")

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <user-id>",
		Short: "Start a session as a registered player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerResponse

			if err := client.Post("/api/v1/players/login", request.LoginRequest{UserID: args[0]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/players/logout", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the session player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerResponse

			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
