package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

const (
	defaultCoolingSetpointMin = -22
	defaultCoolingSetpointMax = 10
)

// Number exposes thermostatCoolingSetpoint as a settable number. Bounds come
// from the coolingSetpointRange attribute when the device reports one.
type Number struct {
	base
	desc domain.GenericInputNumber
}

var _ Commandable = (*Number)(nil)

func newCoolingSetpointNumber(device *smartthings.FullDevice, component string, haDevice domain.Device) *Number {
	b := newBase(device, component, "cooling_setpoint", haDevice)
	n := &Number{base: b}
	min, max := n.bounds()
	value, _ := n.state.FloatValue(smartthings.CapabilityThermostatCoolingSetpoint, smartthings.AttributeCoolingSetpoint)
	n.desc = domain.GenericInputNumber{
		Device:       haDevice,
		Id:           b.uniqueId,
		Name:         entityName(component, "Cooling Set Point"),
		UniqueId:     b.uniqueId,
		Min:          min,
		Max:          max,
		Step:         1,
		Mode:         "box",
		InitialValue: value,
	}
	return n
}

func (n *Number) Platform() string {
	return PlatformNumber
}

func (n *Number) Describe() domain.GenericInputNumber {
	return n.desc
}

// bounds reads coolingSetpointRange {minimum, maximum} at call time, falling
// back to fridge-safe defaults when the attribute is absent.
func (n *Number) bounds() (float64, float64) {
	min, max := float64(defaultCoolingSetpointMin), float64(defaultCoolingSetpointMax)
	if m, ok := n.state.MapValue(smartthings.CapabilityThermostatCoolingSetpoint, smartthings.AttributeCoolingSetpointRange); ok {
		if v, ok := m["minimum"].(float64); ok {
			min = v
		}
		if v, ok := m["maximum"].(float64); ok {
			max = v
		}
	}
	return min, max
}

func (n *Number) UpdateEvent() domain.EntityUpdateEvent {
	v, ok := n.state.FloatValue(smartthings.CapabilityThermostatCoolingSetpoint, smartthings.AttributeCoolingSetpoint)
	if !ok {
		return nil
	}
	return domain.InputNumberUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: n.uniqueId},
		Value:                  v,
	}
}

func (n *Number) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	set, ok := req.(*domain.NumberSetRequest)
	if !ok {
		return nil
	}
	min, max := n.bounds()
	value := set.Value
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	if cmd, ok := GateCommand(n.device, n.state.component, smartthings.CapabilityThermostatCoolingSetpoint,
		smartthings.CommandSetCoolingSetpoint, value); ok {
		return []*smartthings.DeviceCommand{cmd}
	}
	return nil
}

func numbersFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Number {
	if !device.Status.HasCapability(component, smartthings.CapabilityThermostatCoolingSetpoint) {
		return nil
	}
	return []*Number{newCoolingSetpointNumber(device, component, haDevice)}
}
