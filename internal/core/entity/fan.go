package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/core/service"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

var (
	fanSpeedRange  = service.SpeedRange{Low: 1, High: 3}
	hoodSpeedRange = service.SpeedRange{Low: 1, High: 4}

	// vendor order of the named hood speeds, lowest first
	orderedNamedHoodSpeeds = []string{"low", "medium", "high", "max"}
)

// Fan covers the plain fan (switch + fanSpeed + optional preset modes) and
// the kitchen hood fan (samsungce.hoodFanSpeed), which self-configures from
// supportedHoodFanSpeed: a supported list starting with "off" means the
// device speaks named speeds, anything else means integer steps.
type Fan struct {
	base
	hood      bool
	hasSwitch bool
	desc      domain.GenericFan
}

var _ Commandable = (*Fan)(nil)

func newPlainFan(device *smartthings.FullDevice, component string, haDevice domain.Device) *Fan {
	b := newBase(device, component, "fan", haDevice)
	f := &Fan{
		base:      b,
		hasSwitch: device.Status.HasCapability(component, smartthings.CapabilitySwitch),
	}
	desc := domain.GenericFan{
		Device:   haDevice,
		Id:       b.uniqueId,
		Name:     entityName(component, "Fan"),
		UniqueId: b.uniqueId,
	}
	if device.Status.HasCapability(component, smartthings.CapabilityFanSpeed) {
		desc.SpeedCount = fanSpeedRange.High
	}
	if modes, ok := f.state.StringListValue(smartthings.CapabilityAirConditionerFanMode, smartthings.AttributeSupportedAcFanModes); ok {
		desc.PresetModes = modes
	}
	f.desc = desc
	return f
}

func newHoodFan(device *smartthings.FullDevice, component string, haDevice domain.Device) *Fan {
	b := newBase(device, component, "hood_fan", haDevice)
	f := &Fan{
		base:      b,
		hood:      true,
		hasSwitch: device.Status.HasCapability(component, smartthings.CapabilitySwitch),
	}
	speedCount := hoodSpeedRange.High
	if names := f.namedHoodSpeeds(); names != nil {
		speedCount = len(names)
	}
	f.desc = domain.GenericFan{
		Device:     haDevice,
		Id:         b.uniqueId,
		Name:       entityName(component, "Hood Fan"),
		UniqueId:   b.uniqueId,
		SpeedCount: speedCount,
	}
	return f
}

func (f *Fan) Platform() string {
	return PlatformFan
}

func (f *Fan) Describe() domain.GenericFan {
	return f.desc
}

func (f *Fan) supportedHoodSpeeds() []string {
	speeds, ok := f.state.StringListValue(smartthings.CapabilityHoodFanSpeed, smartthings.AttributeSupportedHoodFanSpeed)
	if !ok {
		return nil
	}
	return speeds
}

// namedHoodSpeeds returns the ordered active speed names when the hood
// speaks named speeds, nil when it speaks integer steps.
func (f *Fan) namedHoodSpeeds() []string {
	supported := f.supportedHoodSpeeds()
	if len(supported) == 0 || supported[0] != "off" {
		return nil
	}
	var names []string
	for _, s := range orderedNamedHoodSpeeds {
		for _, sup := range supported {
			if s == sup {
				names = append(names, s)
				break
			}
		}
	}
	return names
}

// Percentage renders the current speed as 0..100; 0 means off. A named-speed
// hood reports its speed as a name ("off", "low", ...), everything else as an
// integer step.
func (f *Fan) Percentage() (int, bool) {
	if f.hood {
		if names := f.namedHoodSpeeds(); names != nil {
			name, ok := f.state.StringValue(smartthings.CapabilityHoodFanSpeed, smartthings.AttributeHoodFanSpeed)
			if !ok {
				return 0, false
			}
			if name == "off" {
				return 0, true
			}
			pct, err := service.OrderedListItemToPercentage(names, name)
			if err != nil {
				return 0, false
			}
			return pct, true
		}
		speed, ok := f.state.IntValue(smartthings.CapabilityHoodFanSpeed, smartthings.AttributeHoodFanSpeed)
		if !ok {
			return 0, false
		}
		if speed <= 0 {
			return 0, true
		}
		return service.RangedValueToPercentage(hoodSpeedRange, speed), true
	}
	speed, ok := f.state.IntValue(smartthings.CapabilityFanSpeed, smartthings.AttributeFanSpeed)
	if !ok {
		return 0, false
	}
	if speed <= 0 {
		return 0, true
	}
	return service.RangedValueToPercentage(fanSpeedRange, speed), true
}

// IsOn follows the switch capability when the component has one, regardless
// of the reported speed; otherwise a non-zero speed means on.
func (f *Fan) IsOn() (bool, bool) {
	if f.hasSwitch {
		v, ok := f.state.StringValue(smartthings.CapabilitySwitch, smartthings.AttributeSwitch)
		if !ok {
			return false, false
		}
		return v == "on", true
	}
	pct, ok := f.Percentage()
	if !ok {
		return false, false
	}
	return pct > 0, true
}

func (f *Fan) UpdateEvent() domain.EntityUpdateEvent {
	on, ok := f.IsOn()
	if !ok {
		return nil
	}
	ev := domain.FanStateUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: f.uniqueId},
		On:                     on,
	}
	if pct, ok := f.Percentage(); ok {
		if !on {
			pct = 0
		}
		ev.Percentage = &pct
	}
	if mode, ok := f.state.StringValue(smartthings.CapabilityAirConditionerFanMode, smartthings.AttributeFanMode); ok {
		ev.PresetMode = &mode
	}
	return ev
}

func (f *Fan) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	var out []*smartthings.DeviceCommand
	gate := func(cap smartthings.Capability, cmd smartthings.Command, args ...any) {
		if c, ok := GateCommand(f.device, f.state.component, cap, cmd, args...); ok {
			out = append(out, c)
		}
	}
	switch set := req.(type) {
	case *domain.FanSetStateRequest:
		if set.On {
			if f.hasSwitch {
				gate(smartthings.CapabilitySwitch, smartthings.CommandOn)
			} else {
				out = f.speedCommands(50)
			}
		} else {
			if f.hasSwitch {
				gate(smartthings.CapabilitySwitch, smartthings.CommandOff)
			} else {
				out = f.speedCommands(0)
			}
		}
	case *domain.FanSetPercentageRequest:
		out = f.speedCommands(set.Percentage)
	case *domain.FanSetPresetModeRequest:
		gate(smartthings.CapabilityAirConditionerFanMode, smartthings.CommandSetFanMode, set.PresetMode)
	}
	return out
}

// speedCommands translates a percentage into vendor speed commands.
// Percentage 0 always routes to the explicit off value, never the bottom
// step.
func (f *Fan) speedCommands(percentage int) []*smartthings.DeviceCommand {
	var out []*smartthings.DeviceCommand
	gate := func(cap smartthings.Capability, cmd smartthings.Command, args ...any) {
		if c, ok := GateCommand(f.device, f.state.component, cap, cmd, args...); ok {
			out = append(out, c)
		}
	}
	if f.hood {
		// named-speed hoods take the speed name as the command argument,
		// integer-step hoods take the step
		if names := f.namedHoodSpeeds(); names != nil {
			if percentage <= 0 {
				gate(smartthings.CapabilityHoodFanSpeed, smartthings.CommandSetHoodFanSpeed, "off")
				return out
			}
			gate(smartthings.CapabilityHoodFanSpeed, smartthings.CommandSetHoodFanSpeed,
				service.PercentageToOrderedListItem(names, percentage))
			return out
		}
		if percentage <= 0 {
			gate(smartthings.CapabilityHoodFanSpeed, smartthings.CommandSetHoodFanSpeed, 0)
			return out
		}
		gate(smartthings.CapabilityHoodFanSpeed, smartthings.CommandSetHoodFanSpeed,
			service.PercentageToRangedValue(hoodSpeedRange, percentage))
		return out
	}
	if percentage <= 0 {
		if f.hasSwitch {
			gate(smartthings.CapabilitySwitch, smartthings.CommandOff)
		} else {
			gate(smartthings.CapabilityFanSpeed, smartthings.CommandSetFanSpeed, 0)
		}
		return out
	}
	if on, ok := f.IsOn(); ok && !on && f.hasSwitch {
		gate(smartthings.CapabilitySwitch, smartthings.CommandOn)
	}
	gate(smartthings.CapabilityFanSpeed, smartthings.CommandSetFanSpeed,
		service.PercentageToRangedValue(fanSpeedRange, percentage))
	return out
}

func fansFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Fan {
	// an air conditioner component presents its fan through the climate
	// surface, not as a standalone fan
	if device.Status.HasCapability(component, smartthings.CapabilityThermostatCoolingSetpoint) {
		return nil
	}
	var out []*Fan
	if device.Status.HasCapability(component, smartthings.CapabilityFanSpeed) ||
		device.Status.HasCapability(component, smartthings.CapabilityAirConditionerFanMode) {
		out = append(out, newPlainFan(device, component, haDevice))
	}
	if device.Status.HasCapability(component, smartthings.CapabilityHoodFanSpeed) {
		out = append(out, newHoodFan(device, component, haDevice))
	}
	return out
}
