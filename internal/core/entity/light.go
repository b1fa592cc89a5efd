package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/core/service"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

const (
	minColorTempKelvin = 2000
	maxColorTempKelvin = 9000
)

// Light covers two shapes: the conventional dimmer (switchLevel, optional
// switch / colorControl / colorTemperature) and the named-level lamp
// (samsungce.lamp). Whether "off" is a dedicated lamp level or a separate
// switch command is decided from the capabilities present on the component.
type Light struct {
	base
	lamp      bool
	hasSwitch bool
	desc      domain.GenericLight
}

var _ Commandable = (*Light)(nil)

func newDimmerLight(device *smartthings.FullDevice, component string, haDevice domain.Device) *Light {
	b := newBase(device, component, "light", haDevice)
	l := &Light{
		base:      b,
		hasSwitch: device.Status.HasCapability(component, smartthings.CapabilitySwitch),
	}
	desc := domain.GenericLight{
		Device:     haDevice,
		Id:         b.uniqueId,
		Name:       entityName(component, "Light"),
		UniqueId:   b.uniqueId,
		Brightness: true,
	}
	if device.Status.HasCapability(component, smartthings.CapabilityColorControl) {
		desc.ColorModes = append(desc.ColorModes, "hs")
	}
	if device.Status.HasCapability(component, smartthings.CapabilityColorTemperature) {
		desc.ColorModes = append(desc.ColorModes, "color_temp")
		desc.MinColorTempKelvin = minColorTempKelvin
		desc.MaxColorTempKelvin = maxColorTempKelvin
	}
	l.desc = desc
	return l
}

func newLampLight(device *smartthings.FullDevice, component string, haDevice domain.Device) *Light {
	b := newBase(device, component, "lamp", haDevice)
	return &Light{
		base:      b,
		lamp:      true,
		hasSwitch: device.Status.HasCapability(component, smartthings.CapabilitySwitch),
		desc: domain.GenericLight{
			Device:     haDevice,
			Id:         b.uniqueId,
			Name:       entityName(component, "Lamp"),
			UniqueId:   b.uniqueId,
			Brightness: true,
		},
	}
}

func (l *Light) Platform() string {
	return PlatformLight
}

func (l *Light) Describe() domain.GenericLight {
	return l.desc
}

func (l *Light) lampLevels() []string {
	levels, ok := l.state.StringListValue(smartthings.CapabilityLamp, smartthings.AttributeSupportedBrightnessLevel)
	if !ok {
		return nil
	}
	return levels
}

func (l *Light) brightness() (int, bool) {
	if l.lamp {
		level, ok := l.state.StringValue(smartthings.CapabilityLamp, smartthings.AttributeBrightnessLevel)
		if !ok {
			return 0, false
		}
		return service.NamedLevelToBrightness(l.lampLevels(), level), true
	}
	level, ok := l.state.IntValue(smartthings.CapabilitySwitchLevel, smartthings.AttributeLevel)
	if !ok {
		return 0, false
	}
	return service.LevelToBrightness(level), true
}

// IsOn follows the switch capability when the component has one; otherwise
// the light is on when its brightness is non-zero.
func (l *Light) IsOn() (bool, bool) {
	if l.hasSwitch {
		v, ok := l.state.StringValue(smartthings.CapabilitySwitch, smartthings.AttributeSwitch)
		if !ok {
			return false, false
		}
		return v == "on", true
	}
	b, ok := l.brightness()
	if !ok {
		return false, false
	}
	return b > 0, true
}

func (l *Light) UpdateEvent() domain.EntityUpdateEvent {
	on, ok := l.IsOn()
	if !ok {
		return nil
	}
	ev := domain.LightStateUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: l.uniqueId},
		On:                     on,
	}
	if b, ok := l.brightness(); ok {
		ev.Brightness = &b
	}
	if hue, ok := l.state.FloatValue(smartthings.CapabilityColorControl, smartthings.AttributeHue); ok {
		h := service.VendorHueToHost(hue)
		ev.Hue = &h
	}
	if sat, ok := l.state.FloatValue(smartthings.CapabilityColorControl, smartthings.AttributeSaturation); ok {
		s := service.ClampSaturation(sat)
		ev.Saturation = &s
	}
	if ct, ok := l.state.IntValue(smartthings.CapabilityColorTemperature, smartthings.AttributeColorTemperature); ok {
		k := service.ClampKelvin(ct)
		ev.ColorTempKelvin = &k
	}
	return ev
}

func (l *Light) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	set, ok := req.(*domain.LightSetRequest)
	if !ok {
		return nil
	}
	if l.lamp {
		return l.lampCommands(set)
	}
	return l.dimmerCommands(set)
}

func (l *Light) dimmerCommands(set *domain.LightSetRequest) []*smartthings.DeviceCommand {
	var out []*smartthings.DeviceCommand
	gate := func(cap smartthings.Capability, cmd smartthings.Command, args ...any) {
		if c, ok := GateCommand(l.device, l.state.component, cap, cmd, args...); ok {
			out = append(out, c)
		}
	}
	if set.On != nil {
		if *set.On {
			if l.hasSwitch && set.Brightness == nil {
				gate(smartthings.CapabilitySwitch, smartthings.CommandOn)
			}
		} else {
			if l.hasSwitch {
				gate(smartthings.CapabilitySwitch, smartthings.CommandOff)
			} else {
				gate(smartthings.CapabilitySwitchLevel, smartthings.CommandSetLevel, 0)
			}
			return out
		}
	}
	if set.Brightness != nil {
		gate(smartthings.CapabilitySwitchLevel, smartthings.CommandSetLevel,
			service.BrightnessToLevel(*set.Brightness))
	}
	if set.Hue != nil || set.Saturation != nil {
		color := map[string]any{}
		if set.Hue != nil {
			color["hue"] = service.HostHueToVendor(*set.Hue)
		}
		if set.Saturation != nil {
			color["saturation"] = service.ClampSaturation(*set.Saturation)
		}
		gate(smartthings.CapabilityColorControl, smartthings.CommandSetColor, color)
	}
	if set.ColorTempKelvin != nil {
		gate(smartthings.CapabilityColorTemperature, smartthings.CommandSetColorTemperature,
			service.ClampKelvin(*set.ColorTempKelvin))
	}
	return out
}

func (l *Light) lampCommands(set *domain.LightSetRequest) []*smartthings.DeviceCommand {
	var out []*smartthings.DeviceCommand
	gate := func(cap smartthings.Capability, cmd smartthings.Command, args ...any) {
		if c, ok := GateCommand(l.device, l.state.component, cap, cmd, args...); ok {
			out = append(out, c)
		}
	}
	levels := l.lampLevels()
	if set.On != nil && !*set.On {
		// off is either the separate switch or the dedicated lamp level
		if l.hasSwitch {
			gate(smartthings.CapabilitySwitch, smartthings.CommandOff)
		} else if len(levels) > 0 && levels[0] == "off" {
			gate(smartthings.CapabilityLamp, smartthings.CommandSetBrightnessLevel, "off")
		}
		return out
	}
	if set.Brightness != nil {
		level := service.BrightnessToNamedLevel(levels, *set.Brightness)
		if level != "" {
			gate(smartthings.CapabilityLamp, smartthings.CommandSetBrightnessLevel, level)
		}
		return out
	}
	if set.On != nil && *set.On {
		if l.hasSwitch {
			gate(smartthings.CapabilitySwitch, smartthings.CommandOn)
		} else if len(levels) > 0 {
			gate(smartthings.CapabilityLamp, smartthings.CommandSetBrightnessLevel, levels[len(levels)-1])
		}
	}
	return out
}

func lightsFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Light {
	var out []*Light
	if device.Status.HasCapability(component, smartthings.CapabilitySwitchLevel) {
		out = append(out, newDimmerLight(device, component, haDevice))
	}
	if device.Status.HasCapability(component, smartthings.CapabilityLamp) {
		out = append(out, newLampLight(device, component, haDevice))
	}
	return out
}
