package cmd

import (
	"github.com/spf13/cobra"

	tui "braviactl/cmd/cli"
	"braviactl/internal/cli"
)

var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Interactive remote control",
	Long: `Start the interactive TUI: configure the TV address, pair with the
on-screen PIN if needed, and drive the remote from a key grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tui.Options{
			Host:       flagHost,
			DeviceName: flagName,
			StoreKind:  flagStore,
			StorePath:  flagStorePath,
			Debug:      verbose,
		}

		if flagDevice != "" {
			manager := cli.NewConfigManager(flagConfigPath)
			entry, err := manager.GetDevice(flagDevice)
			if err != nil {
				return err
			}
			opts.Host = entry.Host
			opts.DeviceName = entry.DeviceName
			if entry.Store != "" {
				opts.StoreKind = entry.Store
			}
			if entry.StorePath != "" {
				opts.StorePath = entry.StorePath
			}
		}

		return tui.Run(opts)
	},
}
