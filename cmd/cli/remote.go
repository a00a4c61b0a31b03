package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"braviactl/internal/bravia"
	"braviactl/internal/device"
)

const maxHistoryEntries = 8

// remoteKey is one button on the remote grid.
type remoteKey struct {
	label  string
	action device.RemoteAction
}

// keyRows lays out the remote grid.
var keyRows = [][]remoteKey{
	{
		{"Power", device.RemoteActionPower},
		{"Wake", device.RemoteActionWakeUp},
		{"Off", device.RemoteActionPowerOff},
	},
	{
		{"Vol+", device.RemoteActionVolumeUp},
		{"Vol-", device.RemoteActionVolumeDown},
		{"Mute", device.RemoteActionMute},
	},
	{
		{"Ch+", device.RemoteActionChannelUp},
		{"Ch-", device.RemoteActionChannelDown},
		{"Input", device.RemoteActionInput},
	},
	{
		{"Up", device.RemoteActionUp},
		{"Down", device.RemoteActionDown},
		{"Left", device.RemoteActionLeft},
		{"Right", device.RemoteActionRight},
		{"OK", device.RemoteActionConfirm},
	},
	{
		{"Home", device.RemoteActionHome},
		{"Menu", device.RemoteActionMenu},
		{"Back", device.RemoteActionBack},
	},
	{
		{"Play", device.RemoteActionPlay},
		{"Pause", device.RemoteActionPause},
		{"Stop", device.RemoteActionStop},
		{"Netflix", device.RemoteActionNetflix},
	},
}

// RemoteModel handles the remote control screen
type RemoteModel struct {
	session *session

	selectedRow int
	selectedCol int

	history []actionHistoryEntry
}

// NewRemoteModel creates the remote screen over a paired session.
func NewRemoteModel(s *session) RemoteModel {
	return RemoteModel{session: s}
}

// Update handles remote screen messages
func (m RemoteModel) Update(msg tea.Msg) (RemoteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selectedRow > 0 {
				m.selectedRow--
				m.selectedCol = min(m.selectedCol, len(keyRows[m.selectedRow])-1)
			}
			return m, nil

		case "down", "j":
			if m.selectedRow < len(keyRows)-1 {
				m.selectedRow++
				m.selectedCol = min(m.selectedCol, len(keyRows[m.selectedRow])-1)
			}
			return m, nil

		case "left", "h":
			if m.selectedCol > 0 {
				m.selectedCol--
			}
			return m, nil

		case "right", "l":
			if m.selectedCol < len(keyRows[m.selectedRow])-1 {
				m.selectedCol++
			}
			return m, nil

		case "enter", " ":
			return m.handlePress(), nil
		}
	}

	return m, nil
}

// handlePress sends the selected key through the device action path and
// records the outcome in the history.
func (m RemoteModel) handlePress() RemoteModel {
	key := keyRows[m.selectedRow][m.selectedCol]

	entry := actionHistoryEntry{
		Timestamp: time.Now(),
		Action:    string(key.action),
	}

	actionJSON, err := bravia.CreateActionJSON(device.ActionRequest{
		Type:   device.ActionTypeRemote,
		Action: string(key.action),
	})
	if err == nil {
		var response *device.ActionResponse
		response, err = m.session.remote.Process(actionJSON)
		if err == nil && !response.Success {
			err = fmt.Errorf("%s", response.Error)
		}
	}

	if err != nil {
		entry.Success = false
		entry.Error = err.Error()
	} else {
		entry.Success = true
	}

	m.history = append(m.history, entry)
	if len(m.history) > maxHistoryEntries {
		m.history = m.history[len(m.history)-maxHistoryEntries:]
	}

	return m
}

// View renders the remote control screen
func (m RemoteModel) View() string {
	var b strings.Builder

	info := m.session.remote.GetDeviceInfo()
	b.WriteString(titleStyle.Render(fmt.Sprintf("braviactl - %s (%s)", info.Model, info.Address)))
	b.WriteString("\n\n")

	for rowIdx, row := range keyRows {
		for colIdx, key := range row {
			if rowIdx == m.selectedRow && colIdx == m.selectedCol {
				b.WriteString(remoteButtonActiveStyle.Render(key.label))
			} else {
				b.WriteString(remoteButtonStyle.Render(key.label))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString(subtitleStyle.Render("History:"))
		b.WriteString("\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			entry := m.history[i]
			line := fmt.Sprintf("%s  %s", entry.Timestamp.Format("15:04:05"), entry.Action)
			if entry.Success {
				b.WriteString(successStyle.Render("✓ " + line))
			} else {
				b.WriteString(errorStyle.Render("✗ " + line + " - " + entry.Error))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("arrows: navigate • enter: send • q: back to setup"))
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
