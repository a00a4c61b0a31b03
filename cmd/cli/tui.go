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
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the interactive session.
type Options struct {
	Host       string
	DeviceName string
	StoreKind  string
	StorePath  string
	Debug      bool
}

// Main TUI model that routes between screens
type model struct {
	currentScreen screen
	width         int
	height        int
	quitting      bool

	opts Options

	// Screen models
	setupModel  SetupModel
	pinModel    PinModel
	remoteModel RemoteModel
}

func initialModel(opts Options) model {
	return model{
		currentScreen: screenDeviceSetup,
		opts:          opts,
		setupModel:    NewSetupModel(opts),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handling
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.currentScreen == screenDeviceSetup {
				m.quitting = true
				return m, tea.Quit
			}
			// In other screens, 'q' goes back to setup
			m.currentScreen = screenDeviceSetup
			m.setupModel = NewSetupModel(m.opts)
			return m, nil
		}

		// Route messages to the active screen
		switch m.currentScreen {
		case screenDeviceSetup:
			var cmd tea.Cmd
			m.setupModel, cmd = m.setupModel.Update(msg)

			// Challenge issued: TV is showing a PIN
			if m.setupModel.AwaitingPIN() {
				m.pinModel = NewPinModel(m.setupModel.TakeSession())
				m.currentScreen = screenPairing
				return m, cmd
			}

			// Connected without a challenge (credential was stored)
			if m.setupModel.IsConnected() {
				m.remoteModel = NewRemoteModel(m.setupModel.TakeSession())
				m.currentScreen = screenRemoteControl
			}

			return m, cmd

		case screenPairing:
			var cmd tea.Cmd
			m.pinModel, cmd = m.pinModel.Update(msg)

			if m.pinModel.IsPaired() {
				m.remoteModel = NewRemoteModel(m.pinModel.TakeSession())
				m.currentScreen = screenRemoteControl
			}

			return m, cmd

		case screenRemoteControl:
			var cmd tea.Cmd
			m.remoteModel, cmd = m.remoteModel.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return successStyle.Render("Thanks for using braviactl!") + "\n"
	}

	switch m.currentScreen {
	case screenDeviceSetup:
		return m.setupModel.View()
	case screenPairing:
		return m.pinModel.View()
	case screenRemoteControl:
		return m.remoteModel.View()
	default:
		return errorStyle.Render("Unknown screen") + "\n"
	}
}

// Run starts the interactive TUI session.
func Run(opts Options) error {
	program := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
