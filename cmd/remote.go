package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"braviactl/internal/bravia"
	"braviactl/internal/device"
	"braviactl/internal/logger"
)

var remoteAmount int

// remoteKeyMap maps CLI spellings to remote actions.
var remoteKeyMap = map[string]device.RemoteAction{
	"power":        device.RemoteActionPower,
	"power-off":    device.RemoteActionPowerOff,
	"wake-up":      device.RemoteActionWakeUp,
	"volume-up":    device.RemoteActionVolumeUp,
	"volume-down":  device.RemoteActionVolumeDown,
	"mute":         device.RemoteActionMute,
	"channel-up":   device.RemoteActionChannelUp,
	"channel-down": device.RemoteActionChannelDown,
	"up":           device.RemoteActionUp,
	"down":         device.RemoteActionDown,
	"left":         device.RemoteActionLeft,
	"right":        device.RemoteActionRight,
	"confirm":      device.RemoteActionConfirm,
	"enter":        device.RemoteActionEnter,
	"home":         device.RemoteActionHome,
	"menu":         device.RemoteActionMenu,
	"back":         device.RemoteActionBack,
	"input":        device.RemoteActionInput,
	"play":         device.RemoteActionPlay,
	"pause":        device.RemoteActionPause,
	"stop":         device.RemoteActionStop,
	"netflix":      device.RemoteActionNetflix,
}

var remoteCmd = &cobra.Command{
	Use:   "remote [key]",
	Short: "Send a remote control key",
	Long: `Send a remote control key to the TV. On first use this triggers the
pairing flow and prompts for the on-screen PIN; afterwards the stored
credential is reused. Use 'braviactl list remote' for available keys.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, exists := remoteKeyMap[args[0]]
		if !exists {
			return fmt.Errorf("unknown remote key: %s", args[0])
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
			Str("key", args[0]).
			Msg("Sending remote control key")

		request := device.ActionRequest{
			Type:   device.ActionTypeRemote,
			Action: string(action),
		}
		if remoteAmount > 0 {
			request.Parameters = map[string]interface{}{"amount": float64(remoteAmount)}
		}

		actionJSON, err := bravia.CreateActionJSON(request)
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
			return fmt.Errorf("remote key failed: %s", response.Error)
		}

		log.Info().Msg("Remote key sent successfully")
		return nil
	},
}

func init() {
	remoteCmd.Flags().IntVar(&remoteAmount, "amount", 0, "repeat the key this many times (volume keys default to 5)")
}
