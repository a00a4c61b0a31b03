package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"braviactl/internal/bravia"
	"braviactl/internal/device"
	"braviactl/internal/logger"
)

// controlMethodMap maps CLI spellings to control actions.
var controlMethodMap = map[string]device.ControlAction{
	"power-status":    device.ControlActionPowerStatus,
	"system-info":     device.ControlActionSystemInfo,
	"volume-info":     device.ControlActionVolumeInfo,
	"playing-content": device.ControlActionPlayingContent,
	"app-list":        device.ControlActionAppList,
}

var controlCmd = &cobra.Command{
	Use:   "control [method]",
	Short: "Send a control API query",
	Long: `Send a control API query to the TV and print the JSON response.
Use 'braviactl list control' for available methods.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, exists := controlMethodMap[args[0]]
		if !exists {
			return fmt.Errorf("unknown control method: %s", args[0])
		}

		log := logger.New()

		tgt, err := resolveTarget()
		if err != nil {
			return err
		}
		defer tgt.close()

		remote, err := bravia.Connect(tgt.config, tgt.store, promptPIN, bravia.WithDebug(verbose))
		if err != nil {
			return err
		}

		log.Info().
			Str("host", tgt.config.Host).
			Str("method", args[0]).
			Msg("Sending control API query")

		actionJSON, err := bravia.CreateActionJSON(device.ActionRequest{
			Type:   device.ActionTypeControl,
			Action: string(action),
		})
		if err != nil {
			return err
		}

		response, err := remote.Process(actionJSON)
		if err != nil {
			if errors.Is(err, bravia.ErrUnauthorized) {
				return fmt.Errorf("%w (run 'braviactl pair --force' to re-pair)", err)
			}
			return err
		}
		if !response.Success {
			return fmt.Errorf("control query failed: %s", response.Error)
		}

		prettyJSON, err := json.MarshalIndent(response.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render response: %w", err)
		}
		cmd.Println(string(prettyJSON))

		return nil
	},
}
