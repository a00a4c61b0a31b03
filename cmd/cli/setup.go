package cli

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"braviactl/internal/bravia"
	"braviactl/internal/credential"
)

// Setup screen input fields
type setupField int

const (
	setupFieldHostAddress setupField = iota
	setupFieldDeviceName
	setupFieldConnect
)

// SetupModel handles the device setup screen
type SetupModel struct {
	focusedField setupField

	// Input fields
	hostAddress string
	deviceName  string

	// Cursor positions
	hostAddressCursor int
	deviceNameCursor  int

	// Connection state
	connectionError string

	opts    Options
	session *session

	connected   bool
	awaitingPIN bool
}

// NewSetupModel creates a new setup screen model, prefilled from flags.
func NewSetupModel(opts Options) SetupModel {
	return SetupModel{
		focusedField:      setupFieldHostAddress,
		hostAddress:       opts.Host,
		deviceName:        opts.DeviceName,
		hostAddressCursor: len(opts.Host),
		deviceNameCursor:  len(opts.DeviceName),
		opts:              opts,
	}
}

// IsConnected reports whether a paired remote is ready.
func (m SetupModel) IsConnected() bool {
	return m.connected
}

// AwaitingPIN reports whether the TV has issued a PIN challenge.
func (m SetupModel) AwaitingPIN() bool {
	return m.awaitingPIN
}

// TakeSession hands the device session to the next screen.
func (m SetupModel) TakeSession() *session {
	return m.session
}

// Update handles setup screen messages
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusedField = (m.focusedField + 1) % 3
			return m, nil

		case "shift+tab", "up":
			m.focusedField = (m.focusedField + 2) % 3
			return m, nil

		case "enter":
			if m.focusedField == setupFieldConnect {
				return m.handleConnect()
			}
			m.focusedField = (m.focusedField + 1) % 3
			return m, nil

		case "left":
			return m.moveCursor(-1), nil

		case "right":
			return m.moveCursor(1), nil

		case "backspace":
			return m.handleBackspace(), nil

		default:
			if len(msg.String()) == 1 {
				return m.handleTextInput(msg.String()), nil
			}
			return m, nil
		}
	}

	return m, nil
}

// handleConnect probes the credential store and either opens the remote
// directly or starts the pairing handshake. This blocks on one or two HTTP
// round trips; the TV answers quickly or not at all.
func (m SetupModel) handleConnect() (SetupModel, tea.Cmd) {
	m.connectionError = ""

	config := bravia.DeviceConfig{
		Host:       strings.TrimSpace(m.hostAddress),
		DeviceName: strings.TrimSpace(m.deviceName),
	}
	if err := config.Validate(); err != nil {
		m.connectionError = err.Error()
		return m, nil
	}

	store, err := openStore(m.opts.StoreKind, m.opts.StorePath, config.Host, config.DeviceName)
	if err != nil {
		m.connectionError = err.Error()
		return m, nil
	}

	m.session = &session{
		config: config,
		store:  store,
		debug:  m.opts.Debug,
	}

	// Stored credential: skip pairing entirely.
	if _, err := store.Get(); err == nil {
		if err := m.session.connect(); err != nil {
			m.connectionError = err.Error()
			return m, nil
		}
		m.connected = true
		return m, nil
	} else if !errors.Is(err, credential.ErrNotFound) {
		m.connectionError = err.Error()
		return m, nil
	}

	err = m.session.startPairing()
	switch {
	case err == nil:
		// TV recognized the client without a challenge.
		if err := m.session.connect(); err != nil {
			m.connectionError = err.Error()
			return m, nil
		}
		m.connected = true
	case errors.Is(err, bravia.ErrPINRequired):
		m.awaitingPIN = true
	default:
		m.connectionError = err.Error()
	}

	return m, nil
}

func (m SetupModel) handleTextInput(input string) SetupModel {
	switch m.focusedField {
	case setupFieldHostAddress:
		m.hostAddress = insertText(m.hostAddress, m.hostAddressCursor, input)
		m.hostAddressCursor++
	case setupFieldDeviceName:
		m.deviceName = insertText(m.deviceName, m.deviceNameCursor, input)
		m.deviceNameCursor++
	}
	return m
}

func (m SetupModel) handleBackspace() SetupModel {
	switch m.focusedField {
	case setupFieldHostAddress:
		if m.hostAddressCursor > 0 {
			m.hostAddress = deleteCharAt(m.hostAddress, m.hostAddressCursor-1)
			m.hostAddressCursor--
		}
	case setupFieldDeviceName:
		if m.deviceNameCursor > 0 {
			m.deviceName = deleteCharAt(m.deviceName, m.deviceNameCursor-1)
			m.deviceNameCursor--
		}
	}
	return m
}

func (m SetupModel) moveCursor(delta int) SetupModel {
	switch m.focusedField {
	case setupFieldHostAddress:
		m.hostAddressCursor = clamp(m.hostAddressCursor+delta, 0, len(m.hostAddress))
	case setupFieldDeviceName:
		m.deviceNameCursor = clamp(m.deviceNameCursor+delta, 0, len(m.deviceName))
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the setup screen
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("braviactl - TV Setup"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Host Address:"))
	b.WriteString("\n")
	hostText := renderTextWithCursor(m.hostAddress, m.hostAddressCursor, m.focusedField == setupFieldHostAddress)
	if m.focusedField == setupFieldHostAddress {
		b.WriteString(inputFocusedStyle.Render(hostText))
	} else {
		b.WriteString(inputStyle.Render(m.hostAddress))
	}
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Device Name:"))
	b.WriteString("\n")
	nameText := renderTextWithCursor(m.deviceName, m.deviceNameCursor, m.focusedField == setupFieldDeviceName)
	if m.focusedField == setupFieldDeviceName {
		b.WriteString(inputFocusedStyle.Render(nameText))
	} else {
		b.WriteString(inputStyle.Render(m.deviceName))
	}
	b.WriteString("\n\n")

	if m.focusedField == setupFieldConnect {
		b.WriteString(buttonActiveStyle.Render("Connect"))
	} else {
		b.WriteString(buttonStyle.Render("Connect"))
	}
	b.WriteString("\n\n")

	if m.connectionError != "" {
		b.WriteString(errorStyle.Render("Error: " + m.connectionError))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: select • q: quit"))
	b.WriteString("\n")

	return b.String()
}
