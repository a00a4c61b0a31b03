package cmd

import (
	"github.com/spf13/cobra"

	"braviactl/internal/bravia"
	"braviactl/internal/logger"
)

var pairForce bool

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair with the TV using the on-screen PIN",
	Long: `Pair registers this client with the TV. The TV displays a PIN on screen;
enter it at the prompt and the resulting credential is persisted for every
later command. With --force an existing credential is discarded first, which
is the way to recover from a revoked registration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fetched after PersistentPreRun has applied the verbose flag.
		log := logger.New()

		tgt, err := resolveTarget()
		if err != nil {
			return err
		}
		defer tgt.close()

		if pairForce {
			if err := tgt.store.Clear(); err != nil {
				return err
			}
		}

		remote, err := bravia.Connect(tgt.config, tgt.store, promptPIN, bravia.WithDebug(verbose))
		if err != nil {
			log.Error().Err(err).Msg("Pairing failed")
			return err
		}

		info := remote.GetDeviceInfo()
		log.Info().
			Str("host", info.Address).
			Str("name", info.Name).
			Msg("Paired with TV, credential stored")
		cmd.Printf("Paired with %s as %q\n", info.Address, info.Name)

		return nil
	},
}

func init() {
	pairCmd.Flags().BoolVar(&pairForce, "force", false, "discard any stored credential and re-pair")
}
