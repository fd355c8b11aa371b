package types

// DeviceState is the lifecycle state published for the button box.
type DeviceState string

const (
	StateInit     DeviceState = "init"
	StateSettling DeviceState = "settling"
	StatePolling  DeviceState = "polling"
	StateStopped  DeviceState = "stopped"
)
