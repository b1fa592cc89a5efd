package entity

import (
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
	"go.uber.org/zap"
)

// GateCommand applies the command execution policy before anything leaves
// the bridge:
//   - the capability must still be present in the latest snapshot for the
//     target component,
//   - the component must not be listed in custom.disabledComponents on main,
//   - the capability must not be listed in custom.disabledCapabilities on
//     main.
//
// A failed gate drops the command (ok=false); the caller logs it at debug
// level and does nothing else.
func GateCommand(device *smartthings.FullDevice, component string, cap smartthings.Capability,
	cmd smartthings.Command, args ...any) (*smartthings.DeviceCommand, bool) {

	if !device.Status.HasCapability(component, cap) {
		return nil, false
	}
	if listed(device, smartthings.CapabilityDisabledComponents, smartthings.AttributeDisabledComponents, component) {
		return nil, false
	}
	if listed(device, smartthings.CapabilityDisabledCapabilities, smartthings.AttributeDisabledCapabilities, string(cap)) {
		return nil, false
	}
	return &smartthings.DeviceCommand{
		DeviceID:   device.Info.DeviceID,
		Component:  component,
		Capability: cap,
		Command:    cmd,
		Arguments:  args,
	}, true
}

func listed(device *smartthings.FullDevice, cap smartthings.Capability, attr smartthings.Attribute, item string) bool {
	st, ok := device.Status.Attribute(smartthings.ComponentMain, cap, attr)
	if !ok {
		return false
	}
	entries, ok := st.StringList()
	if !ok {
		return false
	}
	for _, e := range entries {
		if e == item {
			return true
		}
	}
	return false
}

// LogDroppedCommand is the one place gate drops get reported.
func LogDroppedCommand(logger *zap.Logger, device *smartthings.FullDevice, component string,
	cap smartthings.Capability, cmd smartthings.Command) {
	logger.Debug("command dropped by policy gate",
		zap.String("device", device.Info.DeviceID),
		zap.String("component", component),
		zap.String("capability", string(cap)),
		zap.String("command", string(cmd)))
}
