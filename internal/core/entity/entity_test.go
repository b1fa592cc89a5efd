package entity

import (
	"testing"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/stretchr/testify/assert"
)

func fullDevice(info smartthings.DeviceInfo, status smartthings.DeviceStatus) *smartthings.FullDevice {
	return &smartthings.FullDevice{Info: info, Status: status}
}

func TestRegistryBuild(t *testing.T) {
	devices := []*smartthings.FullDevice{
		fullDevice(smartthings.TestDimmerDevice(), smartthings.TestDimmerStatus()),
		fullDevice(smartthings.TestHoodDevice(), smartthings.TestHoodStatus()),
		fullDevice(smartthings.TestFridgeDevice(), smartthings.TestFridgeStatus()),
	}
	r := BuildRegistry("bridge", devices)

	// dimmer: one light, no plain switch (switch composes into the light)
	assert.Len(t, r.Lights, 2) // dimmer light + hood lamp
	// hood: hood fan + lamp light
	assert.Len(t, r.Fans, 1)
	// fridge: powerCool + powerFreeze + icemaker switch
	assert.Len(t, r.Switches, 3)
	// fridge temperature + water filter usage
	assert.Len(t, r.Sensors, 2)
	// oven stop absent, water filter reset present
	assert.Len(t, r.Buttons, 1)

	for _, e := range r.Entities() {
		found, ok := r.ById(e.UniqueId())
		assert.True(t, ok)
		assert.Equal(t, e, found)
	}
}

func TestGateDisabledComponent(t *testing.T) {
	device := fullDevice(smartthings.TestFridgeDevice(), smartthings.TestFridgeStatus())

	// icemaker is listed in custom.disabledComponents on main
	cmd, ok := GateCommand(device, "icemaker", smartthings.CapabilitySwitch, smartthings.CommandOn)
	assert.False(t, ok)
	assert.Nil(t, cmd)

	// main component commands still pass
	cmd, ok = GateCommand(device, smartthings.ComponentMain, smartthings.CapabilityPowerCool, smartthings.CommandActivate)
	assert.True(t, ok)
	assert.Equal(t, smartthings.CommandActivate, cmd.Command)
}

func TestGateDisabledCapability(t *testing.T) {
	status := smartthings.TestFridgeStatus()
	status[smartthings.ComponentMain][string(smartthings.CapabilityDisabledCapabilities)] = smartthings.CapabilityStatus{
		string(smartthings.AttributeDisabledCapabilities): {Value: []any{"samsungce.powerCool"}},
	}
	device := fullDevice(smartthings.TestFridgeDevice(), status)

	_, ok := GateCommand(device, smartthings.ComponentMain, smartthings.CapabilityPowerCool, smartthings.CommandActivate)
	assert.False(t, ok)
	_, ok = GateCommand(device, smartthings.ComponentMain, smartthings.CapabilityPowerFreeze, smartthings.CommandActivate)
	assert.True(t, ok)
}

func TestGateMissingCapability(t *testing.T) {
	device := fullDevice(smartthings.TestDimmerDevice(), smartthings.TestDimmerStatus())
	_, ok := GateCommand(device, smartthings.ComponentMain, smartthings.CapabilityFanSpeed, smartthings.CommandSetFanSpeed, 2)
	assert.False(t, ok)
}

func TestRegistryCommandToDisabledComponentDropped(t *testing.T) {
	device := fullDevice(smartthings.TestFridgeDevice(), smartthings.TestFridgeStatus())
	r := BuildRegistry("bridge", []*smartthings.FullDevice{device})

	var icemaker *Switch
	for _, s := range r.Switches {
		if s.state.Component() == "icemaker" {
			icemaker = s
		}
	}
	assert.NotNil(t, icemaker)

	cmds := r.Commands(&domain.SwitchSetRequest{
		EntityCommandRequestMixIn: domain.EntityCommandRequestMixIn{EntityId: icemaker.UniqueId()},
		On:                        true,
	})
	assert.Empty(t, cmds)
}

func TestHoodFanSwitchPrecedence(t *testing.T) {
	// switch reads "off" while the speed attribute still reports "medium"
	device := fullDevice(smartthings.TestHoodDevice(), smartthings.TestHoodStatus())
	r := BuildRegistry("bridge", []*smartthings.FullDevice{device})
	assert.Len(t, r.Fans, 1)
	fan := r.Fans[0]

	on, ok := fan.IsOn()
	assert.True(t, ok)
	assert.False(t, on)

	ev, ok := fan.UpdateEvent().(domain.FanStateUpdateEvent)
	assert.True(t, ok)
	assert.False(t, ev.On)
	assert.NotNil(t, ev.Percentage)
	assert.Equal(t, 0, *ev.Percentage)
}

func TestHoodFanNamedSpeedCommands(t *testing.T) {
	device := fullDevice(smartthings.TestHoodDevice(), smartthings.TestHoodStatus())
	haDevice := HADevice(device.Info, "bridge")
	fan := newHoodFan(device, "hood", haDevice)

	// supported list starts with "off" so it speaks named speeds
	assert.Equal(t, []string{"low", "medium", "high", "max"}, fan.namedHoodSpeeds())
	assert.Equal(t, 4, fan.Describe().SpeedCount)

	// reported speed "medium" is the second of four active names
	pct, ok := fan.Percentage()
	assert.True(t, ok)
	assert.Equal(t, 50, pct)

	// percentage 0 routes to the explicit off name
	cmds := fan.Commands(&domain.FanSetPercentageRequest{Percentage: 0})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CommandSetHoodFanSpeed, cmds[0].Command)
	assert.Equal(t, []any{"off"}, cmds[0].Arguments)

	// the command argument is the speed name, not a list index
	cmds = fan.Commands(&domain.FanSetPercentageRequest{Percentage: 50})
	assert.Len(t, cmds, 1)
	assert.Equal(t, []any{"medium"}, cmds[0].Arguments)

	cmds = fan.Commands(&domain.FanSetPercentageRequest{Percentage: 100})
	assert.Len(t, cmds, 1)
	assert.Equal(t, []any{"max"}, cmds[0].Arguments)
}

func TestHoodFanNamedSpeedReadback(t *testing.T) {
	status := smartthings.TestHoodStatus()
	status["hood"][string(smartthings.CapabilityHoodFanSpeed)] = smartthings.CapabilityStatus{
		string(smartthings.AttributeHoodFanSpeed):          {Value: "low"},
		string(smartthings.AttributeSupportedHoodFanSpeed): {Value: []any{"off", "low", "medium", "high", "max"}},
	}
	device := fullDevice(smartthings.TestHoodDevice(), status)
	fan := newHoodFan(device, "hood", HADevice(device.Info, "bridge"))

	pct, ok := fan.Percentage()
	assert.True(t, ok)
	assert.Equal(t, 25, pct)

	status["hood"][string(smartthings.CapabilityHoodFanSpeed)][string(smartthings.AttributeHoodFanSpeed)] = smartthings.Status{Value: "off"}
	pct, ok = fan.Percentage()
	assert.True(t, ok)
	assert.Equal(t, 0, pct)
}

func TestPlainFanStepCommands(t *testing.T) {
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilitySwitch): smartthings.CapabilityStatus{
				string(smartthings.AttributeSwitch): {Value: "off"},
			},
			string(smartthings.CapabilityFanSpeed): smartthings.CapabilityStatus{
				string(smartthings.AttributeFanSpeed): {Value: float64(0)},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "fan-1", Label: "Ceiling Fan"}
	device := fullDevice(info, status)
	fan := newPlainFan(device, smartthings.ComponentMain, HADevice(info, "bridge"))

	// turning on from off goes through the switch first, then the speed
	cmds := fan.Commands(&domain.FanSetPercentageRequest{Percentage: 100})
	assert.Len(t, cmds, 2)
	assert.Equal(t, smartthings.CommandOn, cmds[0].Command)
	assert.Equal(t, smartthings.CommandSetFanSpeed, cmds[1].Command)
	assert.Equal(t, []any{3}, cmds[1].Arguments)

	// percentage 0 maps to switch off, never the bottom step
	cmds = fan.Commands(&domain.FanSetPercentageRequest{Percentage: 0})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CommandOff, cmds[0].Command)
}

func TestFanEligibility(t *testing.T) {
	// a preset-only component (switch + fan modes, no fanSpeed) is still a fan
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilitySwitch): smartthings.CapabilityStatus{
				string(smartthings.AttributeSwitch): {Value: "on"},
			},
			string(smartthings.CapabilityAirConditionerFanMode): smartthings.CapabilityStatus{
				string(smartthings.AttributeFanMode):             {Value: "auto"},
				string(smartthings.AttributeSupportedAcFanModes): {Value: []any{"auto", "low", "high"}},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "purifier-1", Label: "Air Purifier"}
	device := fullDevice(info, status)
	fans := fansFor(device, smartthings.ComponentMain, HADevice(info, "bridge"))
	assert.Len(t, fans, 1)
	assert.Equal(t, []string{"auto", "low", "high"}, fans[0].Describe().PresetModes)
	assert.Equal(t, 0, fans[0].Describe().SpeedCount)

	// an air conditioner component keeps its fan inside the climate surface
	status[smartthings.ComponentMain][string(smartthings.CapabilityThermostatCoolingSetpoint)] = smartthings.CapabilityStatus{
		string(smartthings.AttributeCoolingSetpoint): {Value: float64(24), Unit: "C"},
	}
	assert.Empty(t, fansFor(device, smartthings.ComponentMain, HADevice(info, "bridge")))
}

func TestLampLight(t *testing.T) {
	device := fullDevice(smartthings.TestHoodDevice(), smartthings.TestHoodStatus())
	haDevice := HADevice(device.Info, "bridge")
	lamp := newLampLight(device, "hood", haDevice)

	// current level "high" reads back as full brightness
	ev, ok := lamp.UpdateEvent().(domain.LightStateUpdateEvent)
	assert.True(t, ok)
	assert.NotNil(t, ev.Brightness)
	assert.Equal(t, 255, *ev.Brightness)

	// brightness 0 with a separate switch present turns the switch off
	zero := 0
	off := false
	cmds := lamp.Commands(&domain.LightSetRequest{On: &off, Brightness: &zero})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CapabilitySwitch, cmds[0].Capability)
	assert.Equal(t, smartthings.CommandOff, cmds[0].Command)

	// mid brightness maps to a non-off named level
	mid := 128
	cmds = lamp.Commands(&domain.LightSetRequest{Brightness: &mid})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CommandSetBrightnessLevel, cmds[0].Command)
	assert.NotEqual(t, []any{"off"}, cmds[0].Arguments)
}

func TestLampLightDedicatedOffLevel(t *testing.T) {
	// no separate switch: off must be the dedicated lamp level
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilityLamp): smartthings.CapabilityStatus{
				string(smartthings.AttributeBrightnessLevel):          {Value: "low"},
				string(smartthings.AttributeSupportedBrightnessLevel): {Value: []any{"off", "low", "high"}},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "lamp-1", Label: "Oven Lamp"}
	device := fullDevice(info, status)
	lamp := newLampLight(device, smartthings.ComponentMain, HADevice(info, "bridge"))

	off := false
	cmds := lamp.Commands(&domain.LightSetRequest{On: &off})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CommandSetBrightnessLevel, cmds[0].Command)
	assert.Equal(t, []any{"off"}, cmds[0].Arguments)
}

func TestDimmerLight(t *testing.T) {
	device := fullDevice(smartthings.TestDimmerDevice(), smartthings.TestDimmerStatus())
	haDevice := HADevice(device.Info, "bridge")
	light := newDimmerLight(device, smartthings.ComponentMain, haDevice)

	ev, ok := light.UpdateEvent().(domain.LightStateUpdateEvent)
	assert.True(t, ok)
	assert.True(t, ev.On)
	assert.NotNil(t, ev.Brightness)
	assert.Equal(t, 128, *ev.Brightness)
	assert.NotNil(t, ev.ColorTempKelvin)
	assert.Equal(t, 3000, *ev.ColorTempKelvin)

	// a low but non-zero brightness never writes vendor level 0
	one := 1
	cmds := light.Commands(&domain.LightSetRequest{Brightness: &one})
	assert.Len(t, cmds, 1)
	assert.Equal(t, smartthings.CommandSetLevel, cmds[0].Command)
	assert.Equal(t, []any{1}, cmds[0].Arguments)
}

func TestNumberBoundsFromRange(t *testing.T) {
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilityThermostatCoolingSetpoint): smartthings.CapabilityStatus{
				string(smartthings.AttributeCoolingSetpoint): {Value: float64(4), Unit: "C"},
				string(smartthings.AttributeCoolingSetpointRange): {Value: map[string]any{
					"minimum": float64(1), "maximum": float64(7),
				}},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "fridge-2", Label: "Fridge"}
	device := fullDevice(info, status)
	n := newCoolingSetpointNumber(device, smartthings.ComponentMain, HADevice(info, "bridge"))

	assert.Equal(t, float64(1), n.Describe().Min)
	assert.Equal(t, float64(7), n.Describe().Max)

	// out-of-range writes clamp to the reported bounds
	cmds := n.Commands(&domain.NumberSetRequest{Value: 12})
	assert.Len(t, cmds, 1)
	assert.Equal(t, []any{float64(7)}, cmds[0].Arguments)
}

func TestSensorEnumRemap(t *testing.T) {
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilityWasherOperatingState): smartthings.CapabilityStatus{
				string(smartthings.AttributeMachineState):   {Value: "run"},
				string(smartthings.AttributeWasherJobState): {Value: "airWash"},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "washer-1", Label: "Washer"}
	device := fullDevice(info, status)
	sensors := sensorsFor(device, smartthings.ComponentMain, HADevice(info, "bridge"))
	assert.Len(t, sensors, 3) // machine state, job state, completion time

	var jobState *Sensor
	for _, s := range sensors {
		if s.spec.key == "washer_job_state" {
			jobState = s
		}
	}
	assert.NotNil(t, jobState)
	ev, ok := jobState.UpdateEvent().(domain.TextSensorUpdateEvent)
	assert.True(t, ok)
	assert.Equal(t, "air_wash", ev.Value)
}

func TestSensorUnitRemap(t *testing.T) {
	device := fullDevice(smartthings.TestFridgeDevice(), smartthings.TestFridgeStatus())
	sensors := sensorsFor(device, smartthings.ComponentMain, HADevice(device.Info, "bridge"))

	var temp *Sensor
	for _, s := range sensors {
		if s.spec.key == "temperature" {
			temp = s
		}
	}
	assert.NotNil(t, temp)
	assert.Equal(t, "°C", temp.Describe().UnitOfMeasurement)
}

func TestSensorCEOvenModePreferred(t *testing.T) {
	// a device exposing both ovenMode flavors gets a single oven mode sensor
	// reading from the samsungce one
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilityOvenMode): smartthings.CapabilityStatus{
				string(smartthings.AttributeOvenMode): {Value: "Others"},
			},
			string(smartthings.CapabilityCEOvenMode): smartthings.CapabilityStatus{
				string(smartthings.AttributeOvenMode): {Value: "ConvectionBake"},
			},
			string(smartthings.CapabilityMeatProbe): smartthings.CapabilityStatus{
				string(smartthings.AttributeTemperatureSetpoint): {Value: float64(65), Unit: "C"},
				string(smartthings.AttributeStatus):              {Value: "connected"},
			},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "oven-1", Label: "Oven"}
	device := fullDevice(info, status)
	sensors := sensorsFor(device, smartthings.ComponentMain, HADevice(info, "bridge"))
	assert.Len(t, sensors, 3) // oven mode + meat probe setpoint + status

	var mode *Sensor
	for _, s := range sensors {
		if s.spec.key == "oven_mode" {
			mode = s
		}
	}
	assert.NotNil(t, mode)
	assert.Equal(t, smartthings.CapabilityCEOvenMode, mode.spec.capability)
	ev, ok := mode.UpdateEvent().(domain.TextSensorUpdateEvent)
	assert.True(t, ok)
	assert.Equal(t, "convection_bake", ev.Value)
}

func TestSensorAbsentAttributeYieldsNil(t *testing.T) {
	status := smartthings.DeviceStatus{
		smartthings.ComponentMain: smartthings.ComponentStatus{
			string(smartthings.CapabilityBattery): smartthings.CapabilityStatus{},
		},
	}
	info := smartthings.DeviceInfo{DeviceID: "s-1", Label: "Sensor"}
	device := fullDevice(info, status)
	sensors := sensorsFor(device, smartthings.ComponentMain, HADevice(info, "bridge"))
	assert.Len(t, sensors, 1)
	assert.Nil(t, sensors[0].UpdateEvent())
}
