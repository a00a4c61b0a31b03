// Copyright 2025 Arion Yau
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceEntry is one configured TV in the registry.
type DeviceEntry struct {
	ID         string `yaml:"id"`
	Host       string `yaml:"host"`
	DeviceName string `yaml:"device_name"`
	Store      string `yaml:"store"`      // "file" or "sqlite"
	StorePath  string `yaml:"store_path"` // credential location
}

// Config is the on-disk registry of configured TVs.
type Config struct {
	Devices []DeviceEntry `yaml:"devices"`
}

// Validate checks the registry for missing fields and duplicate IDs.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for i, entry := range c.Devices {
		if entry.ID == "" {
			return fmt.Errorf("device[%d].id is required", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate device ID: %s", entry.ID)
		}
		seen[entry.ID] = true

		if entry.Host == "" {
			return fmt.Errorf("device[%d].host is required", i)
		}
		if entry.DeviceName == "" {
			return fmt.Errorf("device[%d].device_name is required", i)
		}
	}
	return nil
}

// ConfigManager handles registry file operations.
type ConfigManager struct {
	configPath string
}

// NewConfigManager creates a new config manager.
func NewConfigManager(configPath string) *ConfigManager {
	return &ConfigManager{
		configPath: configPath,
	}
}

// LoadConfig loads the registry, creating an empty one if the file does not
// exist yet.
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	if _, err := os.Stat(cm.configPath); os.IsNotExist(err) {
		config := &Config{}
		if err := cm.SaveConfig(config); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the registry to disk.
func (cm *ConfigManager) SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddDevice adds a new device to the registry.
func (cm *ConfigManager) AddDevice(entry DeviceEntry) error {
	config, err := cm.LoadConfig()
	if err != nil {
		return err
	}

	for _, existing := range config.Devices {
		if existing.ID == entry.ID {
			return fmt.Errorf("device with ID '%s' already exists", entry.ID)
		}
	}

	config.Devices = append(config.Devices, entry)
	return cm.SaveConfig(config)
}

// RemoveDevice removes a device from the registry.
func (cm *ConfigManager) RemoveDevice(id string) error {
	config, err := cm.LoadConfig()
	if err != nil {
		return err
	}

	for i, entry := range config.Devices {
		if entry.ID == id {
			config.Devices = append(config.Devices[:i], config.Devices[i+1:]...)
			return cm.SaveConfig(config)
		}
	}

	return fmt.Errorf("device with ID '%s' not found", id)
}

// GetDevice looks up a device by ID.
func (cm *ConfigManager) GetDevice(id string) (*DeviceEntry, error) {
	config, err := cm.LoadConfig()
	if err != nil {
		return nil, err
	}

	for _, entry := range config.Devices {
		if entry.ID == id {
			return &entry, nil
		}
	}

	return nil, fmt.Errorf("device with ID '%s' not found", id)
}

// ListDevices returns all configured devices.
func (cm *ConfigManager) ListDevices() ([]DeviceEntry, error) {
	config, err := cm.LoadConfig()
	if err != nil {
		return nil, err
	}

	return config.Devices, nil
}
