package device

import (
	"encoding/json"
	"fmt"
)

// Device represents a remotely controllable device that processes
// JSON-encoded actions.
type Device interface {
	// Process handles a JSON-encoded action and executes the corresponding
	// operation against the device.
	Process(actionJSON []byte) (*ActionResponse, error)

	// GetDeviceInfo returns basic information about the device.
	GetDeviceInfo() DeviceInfo
}

// DeviceInfo contains basic information about a device.
type DeviceInfo struct {
	Type         string   `json:"type"`
	Model        string   `json:"model"`
	Address      string   `json:"address"`
	Name         string   `json:"name"`
	Paired       bool     `json:"paired"`
	Capabilities []string `json:"capabilities"`
}

// ActionType represents the type of action to perform.
type ActionType string

const (
	ActionTypeRemote  ActionType = "remote"
	ActionTypeControl ActionType = "control"
)

// ActionRequest represents a JSON action request.
type ActionRequest struct {
	Type       ActionType             `json:"type"`
	Action     string                 `json:"action"`
	Parameters map[string]interface{} `json:"parameters"`
}

// ActionResponse represents the response from processing an action.
type ActionResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RemoteAction represents available remote control key actions.
type RemoteAction string

const (
	RemoteActionPower       RemoteAction = "power"
	RemoteActionPowerOff    RemoteAction = "power_off"
	RemoteActionWakeUp      RemoteAction = "wake_up"
	RemoteActionVolumeUp    RemoteAction = "volume_up"
	RemoteActionVolumeDown  RemoteAction = "volume_down"
	RemoteActionMute        RemoteAction = "mute"
	RemoteActionChannelUp   RemoteAction = "channel_up"
	RemoteActionChannelDown RemoteAction = "channel_down"
	RemoteActionUp          RemoteAction = "up"
	RemoteActionDown        RemoteAction = "down"
	RemoteActionLeft        RemoteAction = "left"
	RemoteActionRight       RemoteAction = "right"
	RemoteActionConfirm     RemoteAction = "confirm"
	RemoteActionEnter       RemoteAction = "enter"
	RemoteActionHome        RemoteAction = "home"
	RemoteActionMenu        RemoteAction = "menu"
	RemoteActionBack        RemoteAction = "back"
	RemoteActionInput       RemoteAction = "input"
	RemoteActionPlay        RemoteAction = "play"
	RemoteActionPause       RemoteAction = "pause"
	RemoteActionStop        RemoteAction = "stop"
	RemoteActionNetflix     RemoteAction = "netflix"
)

// ControlAction represents available control API actions.
type ControlAction string

const (
	ControlActionPowerStatus    ControlAction = "power_status"
	ControlActionSystemInfo     ControlAction = "system_info"
	ControlActionVolumeInfo     ControlAction = "volume_info"
	ControlActionPlayingContent ControlAction = "playing_content"
	ControlActionAppList        ControlAction = "app_list"
)

// ParseActionRequest parses JSON input into an ActionRequest.
func ParseActionRequest(actionJSON []byte) (*ActionRequest, error) {
	var request ActionRequest
	if err := json.Unmarshal(actionJSON, &request); err != nil {
		return nil, fmt.Errorf("failed to parse action request: %w", err)
	}

	if request.Type == "" {
		return nil, fmt.Errorf("action type is required")
	}

	if request.Action == "" {
		return nil, fmt.Errorf("action is required")
	}

	return &request, nil
}
