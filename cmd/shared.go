package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"braviactl/internal/bravia"
	"braviactl/internal/cli"
	"braviactl/internal/credential"
)

var (
	flagHost       string
	flagName       string
	flagDevice     string
	flagConfigPath string
	flagStore      string
	flagStorePath  string
)

// target is the resolved device + credential store for one invocation.
type target struct {
	config bravia.DeviceConfig
	store  credential.Store
	close  func() error
}

// resolveTarget builds the device config and credential store from flags,
// or from a registry entry when --device is given.
func resolveTarget() (*target, error) {
	host := flagHost
	name := flagName
	storeKind := flagStore
	storePath := flagStorePath

	if flagDevice != "" {
		manager := cli.NewConfigManager(flagConfigPath)
		entry, err := manager.GetDevice(flagDevice)
		if err != nil {
			return nil, err
		}
		host = entry.Host
		name = entry.DeviceName
		if entry.Store != "" {
			storeKind = entry.Store
		}
		if entry.StorePath != "" {
			storePath = entry.StorePath
		}
	}

	config := bravia.DeviceConfig{Host: host, DeviceName: name}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch storeKind {
	case "file":
		if storePath == "" {
			storePath = "credentials.yml"
		}
		return &target{
			config: config,
			store:  credential.NewFile(storePath, host, name),
			close:  func() error { return nil },
		}, nil
	case "sqlite":
		if storePath == "" {
			storePath = "credentials.db"
		}
		store, err := credential.NewSQLite(storePath, host, name)
		if err != nil {
			return nil, err
		}
		return &target{
			config: config,
			store:  store,
			close:  store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s (use 'file' or 'sqlite')", storeKind)
	}
}

// promptPIN reads the PIN shown on the TV from stdin. This is the blocking
// suspension point of the pairing flow; it waits as long as the user does.
func promptPIN() (string, error) {
	fmt.Fprint(os.Stderr, "Enter the PIN displayed on the TV: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read PIN: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// listConfiguredDevices renders the registry entries for display.
func listConfiguredDevices() ([]string, error) {
	manager := cli.NewConfigManager(flagConfigPath)
	entries, err := manager.ListDevices()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s - %s (as %q)", entry.ID, entry.Host, entry.DeviceName))
	}
	return lines, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagHost, "host", "H", "", "TV host address")
	rootCmd.PersistentFlags().StringVarP(&flagName, "name", "n", "braviactl", "client display name registered with the TV")
	rootCmd.PersistentFlags().StringVarP(&flagDevice, "device", "D", "", "device ID from the registry (overrides --host/--name)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "braviactl.yml", "device registry path")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "credential store kind (file or sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "credential store location")
}
