package domain

import "fmt"

// EntityCommandRequest

type EntityCommandRequest interface {
	ActorRequest
	EntityCommand() string
	TargetEntityId() string
}

type EntityCommandRequestMixIn struct {
	ActorRequestMixIn
	EntityId string
}

func (r EntityCommandRequestMixIn) EntityCommand() string {
	return fmt.Sprintf("%T", r)
}

func (r EntityCommandRequestMixIn) TargetEntityId() string {
	return r.EntityId
}

// Entity commands, parsed from MQTT command topics

type SwitchSetRequest struct {
	EntityCommandRequestMixIn
	On bool
}

// LightSetRequest is a partial light command: nil fields are left untouched.
type LightSetRequest struct {
	EntityCommandRequestMixIn
	On              *bool
	Brightness      *int
	Hue             *float64
	Saturation      *float64
	ColorTempKelvin *int
}

type FanSetStateRequest struct {
	EntityCommandRequestMixIn
	On bool
}

type FanSetPercentageRequest struct {
	EntityCommandRequestMixIn
	Percentage int
}

type FanSetPresetModeRequest struct {
	EntityCommandRequestMixIn
	PresetMode string
}

type NumberSetRequest struct {
	EntityCommandRequestMixIn
	Value float64
}

type ButtonPressRequest struct {
	EntityCommandRequestMixIn
}

// ensure interface compliance
var _ EntityCommandRequest = (*SwitchSetRequest)(nil)
var _ EntityCommandRequest = (*LightSetRequest)(nil)
var _ EntityCommandRequest = (*FanSetPercentageRequest)(nil)
