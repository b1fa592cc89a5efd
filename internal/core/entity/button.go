package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

type buttonSpec struct {
	capability  smartthings.Capability
	command     smartthings.Command
	key         string
	name        string
	deviceClass string
}

var buttonSpecs = []buttonSpec{
	{smartthings.CapabilityOvenOperatingState, smartthings.CommandStop, "stop", "Stop", ""},
	{smartthings.CapabilityWaterFilter, smartthings.CommandResetWaterFilter, "reset_water_filter", "Reset Water Filter", "restart"},
}

type Button struct {
	base
	spec buttonSpec
	desc domain.GenericButton
}

var _ Commandable = (*Button)(nil)

func newButton(device *smartthings.FullDevice, component string, spec buttonSpec, haDevice domain.Device) *Button {
	b := newBase(device, component, spec.key, haDevice)
	return &Button{
		base: b,
		spec: spec,
		desc: domain.GenericButton{
			Device:      haDevice,
			Id:          b.uniqueId,
			Name:        entityName(component, spec.name),
			UniqueId:    b.uniqueId,
			DeviceClass: spec.deviceClass,
		},
	}
}

func (b *Button) Platform() string {
	return PlatformButton
}

func (b *Button) Describe() domain.GenericButton {
	return b.desc
}

// Buttons are stateless; there is nothing to publish between presses.
func (b *Button) UpdateEvent() domain.EntityUpdateEvent {
	return nil
}

func (b *Button) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	if _, ok := req.(*domain.ButtonPressRequest); !ok {
		return nil
	}
	if cmd, ok := GateCommand(b.device, b.state.component, b.spec.capability, b.spec.command); ok {
		return []*smartthings.DeviceCommand{cmd}
	}
	return nil
}

func buttonsFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Button {
	var out []*Button
	for _, spec := range buttonSpecs {
		if !device.Status.HasCapability(component, spec.capability) {
			continue
		}
		out = append(out, newButton(device, component, spec, haDevice))
	}
	return out
}
