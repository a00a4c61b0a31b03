package cli

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"braviactl/internal/bravia"
)

// PinModel handles the pairing screen: the TV is displaying a PIN and the
// user types it here. Submitting the PIN is the second half of the
// registration handshake.
type PinModel struct {
	session *session

	pin       string
	pinCursor int

	pairingError string
	rejected     bool
	paired       bool
}

// NewPinModel creates the pairing screen over a session whose pairing is in
// the challenge-sent state.
func NewPinModel(s *session) PinModel {
	return PinModel{session: s}
}

// IsPaired reports whether the handshake finished and a remote is ready.
func (m PinModel) IsPaired() bool {
	return m.paired
}

// TakeSession hands the device session to the next screen.
func (m PinModel) TakeSession() *session {
	return m.session
}

// Update handles pairing screen messages
func (m PinModel) Update(msg tea.Msg) (PinModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.handleSubmit()

		case "r":
			// After a rejection the handshake must restart from scratch so
			// the TV issues a fresh PIN.
			if m.rejected {
				return m.handleRestart()
			}
			return m.handleTextInput("r"), nil

		case "left":
			m.pinCursor = clamp(m.pinCursor-1, 0, len(m.pin))
			return m, nil

		case "right":
			m.pinCursor = clamp(m.pinCursor+1, 0, len(m.pin))
			return m, nil

		case "backspace":
			if m.pinCursor > 0 {
				m.pin = deleteCharAt(m.pin, m.pinCursor-1)
				m.pinCursor--
			}
			return m, nil

		default:
			if len(msg.String()) == 1 {
				return m.handleTextInput(msg.String()), nil
			}
			return m, nil
		}
	}

	return m, nil
}

func (m PinModel) handleTextInput(input string) PinModel {
	if m.rejected {
		return m
	}
	m.pin = insertText(m.pin, m.pinCursor, input)
	m.pinCursor++
	return m
}

func (m PinModel) handleSubmit() (PinModel, tea.Cmd) {
	pin := strings.TrimSpace(m.pin)
	if pin == "" {
		m.pairingError = "enter the PIN shown on the TV"
		return m, nil
	}

	err := m.session.completePairing(pin)
	if err != nil {
		if errors.Is(err, bravia.ErrPairingRejected) {
			m.pairingError = "The TV rejected the PIN"
			m.rejected = true
			return m, nil
		}
		m.pairingError = err.Error()
		m.rejected = true
		return m, nil
	}

	if err := m.session.connect(); err != nil {
		m.pairingError = err.Error()
		return m, nil
	}

	m.paired = true
	return m, nil
}

func (m PinModel) handleRestart() (PinModel, tea.Cmd) {
	m.pin = ""
	m.pinCursor = 0
	m.pairingError = ""
	m.rejected = false

	err := m.session.startPairing()
	switch {
	case err == nil:
		if err := m.session.connect(); err != nil {
			m.pairingError = err.Error()
			return m, nil
		}
		m.paired = true
	case errors.Is(err, bravia.ErrPINRequired):
		// New PIN on screen, wait for input.
	default:
		m.pairingError = err.Error()
		m.rejected = true
	}

	return m, nil
}

// View renders the pairing screen
func (m PinModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("braviactl - Pairing"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("The TV is displaying a PIN. Enter it below:"))
	b.WriteString("\n")
	b.WriteString(inputFocusedStyle.Render(renderTextWithCursor(m.pin, m.pinCursor, !m.rejected)))
	b.WriteString("\n\n")

	if m.pairingError != "" {
		b.WriteString(errorStyle.Render("Error: " + m.pairingError))
		b.WriteString("\n\n")
	}

	if m.rejected {
		b.WriteString(helpStyle.Render("r: restart pairing • q: back to setup"))
	} else {
		b.WriteString(helpStyle.Render("enter: submit PIN • q: back to setup"))
	}
	b.WriteString("\n")

	return b.String()
}
