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

package credential

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileRecord is the on-disk YAML shape. Host and nickname identify the
// registration the token belongs to: a token saved under a different device
// name is not returned, because the TV treats each nickname as a distinct
// registered client.
type fileRecord struct {
	Host       string `yaml:"host"`
	DeviceName string `yaml:"device_name"`
	Token      string `yaml:"token"`
}

// File persists the credential in a YAML file.
type File struct {
	path       string
	host       string
	deviceName string
}

// NewFile creates a file-backed store at path, scoped to one TV and one
// registration nickname.
func NewFile(path, host, deviceName string) *File {
	return &File{
		path:       path,
		host:       host,
		deviceName: deviceName,
	}
}

// Get returns the stored token. A file written for a different host or
// device name counts as not paired.
func (f *File) Get() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	var record fileRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("failed to parse credential file: %w", err)
	}

	if record.Host != f.host || record.DeviceName != f.deviceName || record.Token == "" {
		return "", ErrNotFound
	}

	return record.Token, nil
}

// Set writes the token to disk. The file is created with 0600 permissions
// since the token authorizes full control of the TV.
func (f *File) Set(token string) error {
	record := fileRecord{
		Host:       f.host,
		DeviceName: f.deviceName,
		Token:      token,
	}

	data, err := yaml.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create credential directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	return nil
}

// Clear removes the credential file.
func (f *File) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}
