package bravia

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"braviactl/internal/credential"
	"braviactl/internal/device"
)

// CreateActionJSON encodes an action request for Process.
func CreateActionJSON(request device.ActionRequest) ([]byte, error) {
	return json.Marshal(request)
}

// remoteActionMap maps generic remote actions to key names in the TV's
// remote controller table.
var remoteActionMap = map[device.RemoteAction]string{
	device.RemoteActionPower:       "Power",
	device.RemoteActionPowerOff:    "PowerOff",
	device.RemoteActionWakeUp:      "WakeUp",
	device.RemoteActionVolumeUp:    "VolumeUp",
	device.RemoteActionVolumeDown:  "VolumeDown",
	device.RemoteActionMute:        "Mute",
	device.RemoteActionChannelUp:   "ChannelUp",
	device.RemoteActionChannelDown: "ChannelDown",
	device.RemoteActionUp:          "Up",
	device.RemoteActionDown:        "Down",
	device.RemoteActionLeft:        "Left",
	device.RemoteActionRight:       "Right",
	device.RemoteActionConfirm:     "Confirm",
	device.RemoteActionEnter:       "Enter",
	device.RemoteActionHome:        "Home",
	device.RemoteActionMenu:        "Menu",
	device.RemoteActionBack:        "Return",
	device.RemoteActionInput:       "Input",
	device.RemoteActionPlay:        "Play",
	device.RemoteActionPause:       "Pause",
	device.RemoteActionStop:        "Stop",
	device.RemoteActionNetflix:     "Netflix",
}

// controlActionMap maps generic control actions to API endpoints and methods.
var controlActionMap = map[device.ControlAction]struct {
	endpoint BraviaEndpoint
	method   BraviaMethod
}{
	device.ControlActionPowerStatus:    {SystemEndpoint, GetPowerStatus},
	device.ControlActionSystemInfo:     {SystemEndpoint, GetSystemInformation},
	device.ControlActionVolumeInfo:     {AudioEndpoint, GetVolumeInformation},
	device.ControlActionPlayingContent: {AVContentEndpoint, GetPlayingContentInfo},
	device.ControlActionAppList:        {AppControlEndpoint, GetApplicationList},
}

// BraviaRemote is an authenticated handle on one TV. It implements the
// device.Device interface and exposes the common remote keys as methods.
type BraviaRemote struct {
	client *BraviaClient
	codes  CodeTable
	info   device.DeviceInfo
}

// Open builds a remote over an existing credential store without ever
// pairing. Commands fail with ErrUnauthorized until the store holds a token.
func Open(config DeviceConfig, store credential.Store, opts ...Option) (*BraviaRemote, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := NewBraviaClient(config.Host, opts...)

	token, err := store.Get()
	if err != nil && !errors.Is(err, credential.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		client.SetCredential(token)
	}

	return newRemote(client, config), nil
}

// Connect builds a remote, running the pairing flow first if the store holds
// no credential. When a credential is already stored, pinFunc is never
// invoked; the token is assumed valid until a command proves otherwise.
func Connect(config DeviceConfig, store credential.Store, pinFunc PinFunc, opts ...Option) (*BraviaRemote, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := NewBraviaClient(config.Host, opts...)

	token, err := store.Get()
	switch {
	case err == nil:
		client.SetCredential(token)
	case errors.Is(err, credential.ErrNotFound):
		pairing, err := NewPairing(client, config, store)
		if err != nil {
			return nil, err
		}
		if err := pairing.Run(pinFunc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return newRemote(client, config), nil
}

func newRemote(client *BraviaClient, config DeviceConfig) *BraviaRemote {
	remote := &BraviaRemote{
		client: client,
		info: device.DeviceInfo{
			Type:    "bravia_tv",
			Model:   "Sony Bravia",
			Address: config.Host,
			Name:    config.DeviceName,
			Paired:  client.Credential() != "",
			Capabilities: []string{
				"remote_control",
				"system_control",
				"audio_control",
				"content_control",
				"app_control",
			},
		},
	}

	// The TV's own table is preferred but needs auth on some firmware; fall
	// back to the built-in codes when it cannot be fetched.
	if remote.Paired() {
		if codes, err := client.CodeTable(); err == nil {
			remote.codes = codes
			return remote
		}
	}
	remote.codes = DefaultCodeTable()

	return remote
}

// Paired reports whether a credential is currently attached.
func (br *BraviaRemote) Paired() bool {
	return br.client.Credential() != ""
}

// GetDeviceInfo returns information about this Bravia device.
func (br *BraviaRemote) GetDeviceInfo() device.DeviceInfo {
	br.info.Paired = br.Paired()
	return br.info
}

// SendKey sends the named remote key once. With no stored credential it
// fails locally with ErrUnauthorized before any network call.
func (br *BraviaRemote) SendKey(name string) error {
	return br.sendKey(name, 1)
}

func (br *BraviaRemote) sendKey(name string, times int) error {
	if !br.Paired() {
		return fmt.Errorf("%w: no credential stored, pair first", ErrUnauthorized)
	}

	code, ok := br.codes[name]
	if !ok {
		code, ok = DefaultCodeTable()[name]
	}
	if !ok {
		return fmt.Errorf("unknown remote key: %s", name)
	}

	for i := 0; i < times; i++ {
		if err := br.client.RemoteRequest(code); err != nil {
			return err
		}
	}

	return nil
}

// Mute toggles audio mute.
func (br *BraviaRemote) Mute() error {
	return br.SendKey("Mute")
}

// VolumeUp raises the volume by amount steps (5 when amount <= 0).
func (br *BraviaRemote) VolumeUp(amount int) error {
	if amount <= 0 {
		amount = 5
	}
	return br.sendKey("VolumeUp", amount)
}

// VolumeDown lowers the volume by amount steps (5 when amount <= 0).
func (br *BraviaRemote) VolumeDown(amount int) error {
	if amount <= 0 {
		amount = 5
	}
	return br.sendKey("VolumeDown", amount)
}

// Play resumes playback.
func (br *BraviaRemote) Play() error {
	return br.SendKey("Play")
}

// Pause pauses playback.
func (br *BraviaRemote) Pause() error {
	return br.SendKey("Pause")
}

// PowerOff turns the TV off.
func (br *BraviaRemote) PowerOff() error {
	return br.SendKey("PowerOff")
}

// WakeUp turns the TV on.
func (br *BraviaRemote) WakeUp() error {
	return br.SendKey("WakeUp")
}

// Home opens the home screen.
func (br *BraviaRemote) Home() error {
	return br.SendKey("Home")
}

// Netflix launches the Netflix app shortcut.
func (br *BraviaRemote) Netflix() error {
	return br.SendKey("Netflix")
}

// Enter presses the enter key.
func (br *BraviaRemote) Enter() error {
	return br.SendKey("Enter")
}

// Confirm presses the confirm/OK key.
func (br *BraviaRemote) Confirm() error {
	return br.SendKey("Confirm")
}

// IsOn reports whether the TV is turned on.
func (br *BraviaRemote) IsOn() (bool, error) {
	if !br.Paired() {
		return false, fmt.Errorf("%w: no credential stored, pair first", ErrUnauthorized)
	}

	payload := CreatePayload(10, GetPowerStatus, nil)
	result, err := br.client.controlResult(SystemEndpoint, payload)
	if err != nil {
		return false, err
	}

	if len(result.Result) < 1 {
		return false, fmt.Errorf("unexpected getPowerStatus result shape")
	}

	var status powerStatus
	if err := json.Unmarshal(result.Result[0], &status); err != nil {
		return false, fmt.Errorf("failed to parse power status: %w", err)
	}

	return status.Status == "active", nil
}

// Process handles JSON action requests and routes them to the remote or
// control path.
func (br *BraviaRemote) Process(actionJSON []byte) (*device.ActionResponse, error) {
	request, err := device.ParseActionRequest(actionJSON)
	if err != nil {
		return &device.ActionResponse{
			Success: false,
			Error:   err.Error(),
		}, nil
	}

	switch request.Type {
	case device.ActionTypeRemote:
		return br.processRemoteAction(request)
	case device.ActionTypeControl:
		return br.processControlAction(request)
	default:
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("unsupported action type: %s", request.Type),
		}, nil
	}
}

func (br *BraviaRemote) processRemoteAction(request *device.ActionRequest) (*device.ActionResponse, error) {
	keyName, exists := remoteActionMap[device.RemoteAction(request.Action)]
	if !exists {
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("unsupported remote action: %s", request.Action),
		}, nil
	}

	times := 1
	if request.Parameters != nil {
		if amount, ok := request.Parameters["amount"]; ok {
			if n, ok := amount.(float64); ok && n > 0 {
				times = int(n)
			}
		}
	}

	if err := br.sendKey(keyName, times); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("remote request failed: %v", err),
		}, nil
	}

	return &device.ActionResponse{
		Success: true,
		Data:    fmt.Sprintf("Remote action '%s' executed successfully", request.Action),
	}, nil
}

func (br *BraviaRemote) processControlAction(request *device.ActionRequest) (*device.ActionResponse, error) {
	if !br.Paired() {
		return nil, fmt.Errorf("%w: no credential stored, pair first", ErrUnauthorized)
	}

	actionInfo, exists := controlActionMap[device.ControlAction(request.Action)]
	if !exists {
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("unsupported control action: %s", request.Action),
		}, nil
	}

	payload := CreatePayload(1, actionInfo.method, nil)

	resp, err := br.client.ControlRequest(actionInfo.endpoint, payload)
	if err != nil {
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("control request failed: %v", err),
		}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s refused with status %d", ErrUnauthorized, request.Action, resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &device.ActionResponse{
			Success: false,
			Error:   fmt.Sprintf("failed to read response: %v", err),
		}, nil
	}

	var responseData interface{}
	if err := json.Unmarshal(responseBody, &responseData); err != nil {
		// Non-JSON body, return it raw.
		return &device.ActionResponse{
			Success: true,
			Data:    string(responseBody),
		}, nil
	}

	return &device.ActionResponse{
		Success: true,
		Data:    responseData,
	}, nil
}
