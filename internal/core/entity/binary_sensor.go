package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

type binarySensorSpec struct {
	capability  smartthings.Capability
	attribute   smartthings.Attribute
	onValue     string
	key         string
	name        string
	deviceClass string
}

var binarySensorSpecs = []binarySensorSpec{
	{smartthings.CapabilityContactSensor, smartthings.AttributeContact, "open", "contact", "Contact", "door"},
	{smartthings.CapabilityMotionSensor, smartthings.AttributeMotion, "active", "motion", "Motion", "motion"},
	{smartthings.CapabilityPresenceSensor, smartthings.AttributePresence, "present", "presence", "Presence", "presence"},
	{smartthings.CapabilityWaterSensor, smartthings.AttributeWater, "wet", "water", "Water", "moisture"},
	{smartthings.CapabilityAccelerationSensor, smartthings.AttributeAcceleration, "active", "acceleration", "Acceleration", "moving"},
	{smartthings.CapabilityTamperAlert, smartthings.AttributeTamper, "detected", "tamper", "Tamper", "tamper"},
	{smartthings.CapabilityValve, smartthings.AttributeValve, "open", "valve", "Valve", "opening"},
	{smartthings.CapabilityFilterStatus, smartthings.AttributeFilterStatus, "replace", "filter_status", "Filter Status", "problem"},
	{smartthings.CapabilitySmokeDetector, smartthings.AttributeSmoke, "detected", "smoke", "Smoke", "smoke"},
}

type BinarySensor struct {
	base
	spec binarySensorSpec
	desc domain.GenericBinarySensor
}

var _ Entity = (*BinarySensor)(nil)

func newBinarySensor(device *smartthings.FullDevice, component string, spec binarySensorSpec, haDevice domain.Device) *BinarySensor {
	b := newBase(device, component, spec.key, haDevice)
	return &BinarySensor{
		base: b,
		spec: spec,
		desc: domain.GenericBinarySensor{
			Device:      haDevice,
			Id:          b.uniqueId,
			Name:        entityName(component, spec.name),
			UniqueId:    b.uniqueId,
			DeviceClass: spec.deviceClass,
		},
	}
}

func (s *BinarySensor) Platform() string {
	return PlatformBinarySensor
}

func (s *BinarySensor) Describe() domain.GenericBinarySensor {
	return s.desc
}

func (s *BinarySensor) UpdateEvent() domain.EntityUpdateEvent {
	v, ok := s.state.StringValue(s.spec.capability, s.spec.attribute)
	if !ok {
		return nil
	}
	return domain.BinarySensorUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: s.uniqueId},
		Value:                  v == s.spec.onValue,
	}
}

func binarySensorsFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*BinarySensor {
	var out []*BinarySensor
	for _, spec := range binarySensorSpecs {
		if !device.Status.HasCapability(component, spec.capability) {
			continue
		}
		out = append(out, newBinarySensor(device, component, spec, haDevice))
	}
	return out
}
