package bravia

// Well-known IRCC codes for Sony Bravia TVs. Used as a fallback when the
// TV's own remote controller table cannot be fetched; the table reported by
// getRemoteControllerInfo is authoritative for a given model.
const (
	PowerButton BraviaRemoteCode = "AAAAAQAAAAEAAAAVAw=="
	PowerOn     BraviaRemoteCode = "AAAAAQAAAAEAAAAuAw=="
	PowerOff    BraviaRemoteCode = "AAAAAQAAAAEAAAAvAw=="
	WakeUp      BraviaRemoteCode = "AAAAAQAAAAEAAAAuAw=="

	VolumeUp   BraviaRemoteCode = "AAAAAQAAAAEAAAASAw=="
	VolumeDown BraviaRemoteCode = "AAAAAQAAAAEAAAATAw=="
	Mute       BraviaRemoteCode = "AAAAAQAAAAEAAAAUAw=="

	ChannelUp   BraviaRemoteCode = "AAAAAQAAAAEAAAAQAw=="
	ChannelDown BraviaRemoteCode = "AAAAAQAAAAEAAAARAw=="

	Up      BraviaRemoteCode = "AAAAAQAAAAEAAAB0Aw=="
	Down    BraviaRemoteCode = "AAAAAQAAAAEAAAB1Aw=="
	Left    BraviaRemoteCode = "AAAAAQAAAAEAAAA0Aw=="
	Right   BraviaRemoteCode = "AAAAAQAAAAEAAAAzAw=="
	Confirm BraviaRemoteCode = "AAAAAQAAAAEAAABlAw=="
	Enter   BraviaRemoteCode = "AAAAAQAAAAEAAAALAw=="

	Home    BraviaRemoteCode = "AAAAAQAAAAEAAABgAw=="
	Menu    BraviaRemoteCode = "AAAAAQAAAAEAAAAbAw=="
	Options BraviaRemoteCode = "AAAAAgAAAAEAAAA2Aw=="
	Back    BraviaRemoteCode = "AAAAAgAAAAEAAAAjAw=="

	Input BraviaRemoteCode = "AAAAAQAAAAEAAAAlAw=="
	HDMI1 BraviaRemoteCode = "AAAAAgAAAAEAAABoAw=="
	HDMI2 BraviaRemoteCode = "AAAAAgAAAAEAAABpAw=="
	HDMI3 BraviaRemoteCode = "AAAAAgAAAAEAAABqAw=="
	HDMI4 BraviaRemoteCode = "AAAAAgAAAAEAAABrAw=="

	Play        BraviaRemoteCode = "AAAAAgAAAAEAAAAaAw=="
	Pause       BraviaRemoteCode = "AAAAAgAAAAEAAAAZAw=="
	Stop        BraviaRemoteCode = "AAAAAgAAAAEAAAAYAw=="
	Rewind      BraviaRemoteCode = "AAAAAgAAAAEAAAAbAw=="
	FastForward BraviaRemoteCode = "AAAAAgAAAAEAAAAcAw=="

	Netflix BraviaRemoteCode = "AAAAAgAAABoAAAB8Aw=="
)

// API endpoints exposed by the TV.
const (
	SystemEndpoint        BraviaEndpoint = "/sony/system"
	AVContentEndpoint     BraviaEndpoint = "/sony/avContent"
	AudioEndpoint         BraviaEndpoint = "/sony/audio"
	AppControlEndpoint    BraviaEndpoint = "/sony/appControl"
	AccessControlEndpoint BraviaEndpoint = "/sony/accessControl"
	IRCCEndpoint          BraviaEndpoint = "/sony/IRCC"
)

// JSON API methods.
const (
	// System
	GetPowerStatus             BraviaMethod = "getPowerStatus"
	GetSystemInformation       BraviaMethod = "getSystemInformation"
	GetRemoteControllerInfo    BraviaMethod = "getRemoteControllerInfo"
	GetSystemSupportedFunction BraviaMethod = "getSystemSupportedFunction"

	// Access control
	ActRegister BraviaMethod = "actRegister"

	// Audio
	GetVolumeInformation BraviaMethod = "getVolumeInformation"
	SetAudioVolume       BraviaMethod = "setAudioVolume"
	SetAudioMute         BraviaMethod = "setAudioMute"

	// AV content
	GetPlayingContentInfo BraviaMethod = "getPlayingContentInfo"
	GetContentList        BraviaMethod = "getContentList"

	// App control
	GetApplicationList BraviaMethod = "getApplicationList"
	SetActiveApp       BraviaMethod = "setActiveApp"
)
