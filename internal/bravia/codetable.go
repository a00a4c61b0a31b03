package bravia

import (
	"encoding/json"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CodeTable maps remote key names (as reported by the TV) to IRCC codes.
type CodeTable map[string]BraviaRemoteCode

const codeTableCacheSize = 16

var (
	codeTableOnce  sync.Once
	codeTableCache *lru.Cache[string, CodeTable]
)

func tableCache() *lru.Cache[string, CodeTable] {
	codeTableOnce.Do(func() {
		codeTableCache, _ = lru.New[string, CodeTable](codeTableCacheSize)
	})
	return codeTableCache
}

// CodeTable fetches the remote controller table from the TV via
// getRemoteControllerInfo. Tables are cached per host for the lifetime of
// the process, so repeated connects to the same TV fetch once.
func (c *BraviaClient) CodeTable() (CodeTable, error) {
	cache := tableCache()
	if table, ok := cache.Get(c.host); ok {
		return table, nil
	}

	payload := CreatePayload(10, GetRemoteControllerInfo, nil)
	result, err := c.controlResult(SystemEndpoint, payload)
	if err != nil {
		return nil, err
	}

	// Result is positional: [controller info, [code entries]].
	if len(result.Result) < 2 {
		return nil, fmt.Errorf("unexpected getRemoteControllerInfo result shape")
	}

	var entries []codeTableEntry
	if err := json.Unmarshal(result.Result[1], &entries); err != nil {
		return nil, fmt.Errorf("failed to parse remote controller table: %w", err)
	}

	table := make(CodeTable, len(entries))
	for _, entry := range entries {
		table[entry.Name] = BraviaRemoteCode(entry.Value)
	}

	cache.Add(c.host, table)
	return table, nil
}

// DefaultCodeTable returns the built-in table of well-known IRCC codes, used
// when the TV's own table cannot be fetched.
func DefaultCodeTable() CodeTable {
	return CodeTable{
		"Power":       PowerButton,
		"PowerOn":     PowerOn,
		"PowerOff":    PowerOff,
		"WakeUp":      WakeUp,
		"VolumeUp":    VolumeUp,
		"VolumeDown":  VolumeDown,
		"Mute":        Mute,
		"ChannelUp":   ChannelUp,
		"ChannelDown": ChannelDown,
		"Up":          Up,
		"Down":        Down,
		"Left":        Left,
		"Right":       Right,
		"Confirm":     Confirm,
		"Enter":       Enter,
		"Home":        Home,
		"Menu":        Menu,
		"Options":     Options,
		"Return":      Back,
		"Input":       Input,
		"Hdmi1":       HDMI1,
		"Hdmi2":       HDMI2,
		"Hdmi3":       HDMI3,
		"Hdmi4":       HDMI4,
		"Play":        Play,
		"Pause":       Pause,
		"Stop":        Stop,
		"Rewind":      Rewind,
		"Forward":     FastForward,
		"Netflix":     Netflix,
	}
}
