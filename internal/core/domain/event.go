package domain

import "fmt"

type EntityUpdateEventMixIn struct {
	Id string
}

type EntityUpdateEvent interface {
	EntityUpdateEvent() string
	EntityId() string
}

func (e EntityUpdateEventMixIn) EntityUpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e EntityUpdateEventMixIn) EntityId() string {
	return e.Id
}

type FloatSensorUpdateEvent struct {
	EntityUpdateEventMixIn
	Value    float64
	Decimals uint
}

type TextSensorUpdateEvent struct {
	EntityUpdateEventMixIn
	Value string
}

type BinarySensorUpdateEvent struct {
	EntityUpdateEventMixIn
	Value bool
}

type SwitchStateUpdateEvent struct {
	EntityUpdateEventMixIn
	Value bool
}

// LightStateUpdateEvent carries a full light state. Optional fields are nil
// when the light does not support the feature.
type LightStateUpdateEvent struct {
	EntityUpdateEventMixIn
	On              bool
	Brightness      *int
	Hue             *float64
	Saturation      *float64
	ColorTempKelvin *int
}

// FanStateUpdateEvent carries a full fan state.
type FanStateUpdateEvent struct {
	EntityUpdateEventMixIn
	On         bool
	Percentage *int
	PresetMode *string
}

type InputNumberUpdateEvent struct {
	EntityUpdateEventMixIn
	Value    float64
	Decimals uint
}

type BridgeStateUpdateEvent struct {
	EntityUpdateEventMixIn
	Value bool
}
