package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [remote|control|devices]",
	Short: "List available keys, control methods, or configured devices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "remote", "keys":
			names := make([]string, 0, len(remoteKeyMap))
			for name := range remoteKeyMap {
				names = append(names, name)
			}
			sort.Strings(names)
			cmd.Println("Available remote keys:")
			for _, name := range names {
				cmd.Printf("  %s\n", name)
			}
		case "control", "methods":
			names := make([]string, 0, len(controlMethodMap))
			for name := range controlMethodMap {
				names = append(names, name)
			}
			sort.Strings(names)
			cmd.Println("Available control methods:")
			for _, name := range names {
				cmd.Printf("  %s\n", name)
			}
		case "devices":
			entries, err := listConfiguredDevices()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No devices configured")
				return nil
			}
			cmd.Println("Configured devices:")
			for _, line := range entries {
				cmd.Printf("  %s\n", line)
			}
		default:
			return fmt.Errorf("unknown list type: %s (use 'remote', 'control' or 'devices')", args[0])
		}
		return nil
	},
}
