package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"braviactl/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "braviactl",
	Short: "Braviactl - pair with and control Sony Bravia TVs over HTTP",
	Long: `Braviactl pairs with a Sony Bravia TV using the on-screen PIN handshake,
stores the resulting credential, and issues remote control and API commands
with it. Pairing happens once; every later invocation reuses the stored
credential.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetSilentMode(false)
			logger.SetLevel("debug")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(controlCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cliCmd)
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
