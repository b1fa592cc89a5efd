package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

// switchSpec maps a capability to switch semantics: which attribute holds
// the state, which value means on, and the on/off commands.
type switchSpec struct {
	capability smartthings.Capability
	attribute  smartthings.Attribute
	onCommand  smartthings.Command
	offCommand smartthings.Command
	isOn       func(smartthings.Status) bool
	key        string
	name       string
}

var switchSpecs = []switchSpec{
	{
		capability: smartthings.CapabilitySwitch,
		attribute:  smartthings.AttributeSwitch,
		onCommand:  smartthings.CommandOn,
		offCommand: smartthings.CommandOff,
		isOn:       stringEquals("on"),
		key:        "switch",
		name:       "Switch",
	},
	{
		capability: smartthings.CapabilityPowerCool,
		attribute:  smartthings.AttributeActivated,
		onCommand:  smartthings.CommandActivate,
		offCommand: smartthings.CommandDeactivate,
		isOn:       boolTrue,
		key:        "power_cool",
		name:       "Power Cool",
	},
	{
		capability: smartthings.CapabilityPowerFreeze,
		attribute:  smartthings.AttributeActivated,
		onCommand:  smartthings.CommandActivate,
		offCommand: smartthings.CommandDeactivate,
		isOn:       boolTrue,
		key:        "power_freeze",
		name:       "Power Freeze",
	},
}

func stringEquals(expect string) func(smartthings.Status) bool {
	return func(st smartthings.Status) bool {
		v, ok := st.String()
		return ok && v == expect
	}
}

func boolTrue(st smartthings.Status) bool {
	v, ok := st.Value.(bool)
	return ok && v
}

type Switch struct {
	base
	spec switchSpec
	desc domain.GenericSwitch
}

var _ Commandable = (*Switch)(nil)

func newSwitch(device *smartthings.FullDevice, component string, spec switchSpec, haDevice domain.Device) *Switch {
	b := newBase(device, component, spec.key, haDevice)
	return &Switch{
		base: b,
		spec: spec,
		desc: domain.GenericSwitch{
			Device:   haDevice,
			Id:       b.uniqueId,
			Name:     entityName(component, spec.name),
			UniqueId: b.uniqueId,
		},
	}
}

func (s *Switch) Platform() string {
	return PlatformSwitch
}

func (s *Switch) Describe() domain.GenericSwitch {
	return s.desc
}

func (s *Switch) IsOn() (bool, bool) {
	st, ok := s.state.Value(s.spec.capability, s.spec.attribute)
	if !ok {
		return false, false
	}
	return s.spec.isOn(st), true
}

func (s *Switch) UpdateEvent() domain.EntityUpdateEvent {
	on, ok := s.IsOn()
	if !ok {
		return nil
	}
	return domain.SwitchStateUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: s.uniqueId},
		Value:                  on,
	}
}

func (s *Switch) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	set, ok := req.(*domain.SwitchSetRequest)
	if !ok {
		return nil
	}
	cmd := s.spec.offCommand
	if set.On {
		cmd = s.spec.onCommand
	}
	if gated, ok := GateCommand(s.device, s.state.component, s.spec.capability, cmd); ok {
		return []*smartthings.DeviceCommand{gated}
	}
	return nil
}

// switchesFor builds one switch per matching spec. The plain switch
// capability is skipped on components where it composes into a light or a
// fan instead.
func switchesFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Switch {
	var out []*Switch
	for _, spec := range switchSpecs {
		if !device.Status.HasCapability(component, spec.capability) {
			continue
		}
		if spec.capability == smartthings.CapabilitySwitch && switchComposesElsewhere(device, component) {
			continue
		}
		out = append(out, newSwitch(device, component, spec, haDevice))
	}
	return out
}

func switchComposesElsewhere(device *smartthings.FullDevice, component string) bool {
	for _, cap := range []smartthings.Capability{
		smartthings.CapabilitySwitchLevel,
		smartthings.CapabilityLamp,
		smartthings.CapabilityFanSpeed,
		smartthings.CapabilityHoodFanSpeed,
	} {
		if device.Status.HasCapability(component, cap) {
			return true
		}
	}
	return false
}
