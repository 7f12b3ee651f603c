package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kefmc",
		Short: "CLI tool for the KeFMC tournament API",
		Long: `kefmc is a CLI tool for the KeFMC tournament engine JSON API.

It registers players into a ward, manages the device session, shows match
schedules and ward tables, and drives the donations wall, highlights feed
and admin console.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadDevice(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL, cfg.Device, cfg.AdminKey)
			client.verbose = cfg.Verbose
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: KEFMC_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Device, "device", cfg.Device, "Device id (env: KEFMC_DEVICE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DeviceFile, "device-file", cfg.DeviceFile, "Device id file path (env: KEFMC_DEVICE_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin console key (env: KEFMC_ADMIN_KEY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newMembershipCmd())
	rootCmd.AddCommand(newWardsCmd())
	rootCmd.AddCommand(newDonationsCmd())
	rootCmd.AddCommand(newHighlightsCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		NewOutput(cfg.Output).PrintError(err)
		os.Exit(1)
	}
}
