package smartthings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const statusDoc = `{
  "components": {
    "main": {
      "switch": {
        "switch": { "value": "on" }
      },
      "switchLevel": {
        "level": { "value": 73, "unit": "%" }
      },
      "samsungce.lamp": {
        "brightnessLevel": { "value": "low" },
        "supportedBrightnessLevel": { "value": ["off", "low", "high"] }
      },
      "thermostatCoolingSetpoint": {
        "coolingSetpoint": { "value": 4, "unit": "C" },
        "coolingSetpointRange": { "value": { "minimum": 1, "maximum": 7 } }
      }
    }
  }
}`

func TestParseDeviceStatusLookup(t *testing.T) {
	ds, err := ParseDeviceStatus([]byte(statusDoc))
	assert.NoError(t, err)

	// typed-constant key
	st, ok := ds.Attribute(ComponentMain, CapabilitySwitch, AttributeSwitch)
	assert.True(t, ok)
	v, ok := st.String()
	assert.True(t, ok)
	assert.Equal(t, "on", v)

	// raw-string key resolves through the same canonical map
	st, ok = ds.Attribute("main", Capability("switchLevel"), Attribute("level"))
	assert.True(t, ok)
	lvl, ok := st.Int()
	assert.True(t, ok)
	assert.Equal(t, 73, lvl)
	assert.Equal(t, "%", st.Unit)

	assert.True(t, ds.HasCapability(ComponentMain, CapabilityLamp))
	assert.False(t, ds.HasCapability(ComponentMain, CapabilityFanSpeed))
}

func TestStatusTypedAccessors(t *testing.T) {
	ds, err := ParseDeviceStatus([]byte(statusDoc))
	assert.NoError(t, err)

	st, ok := ds.Attribute(ComponentMain, CapabilityLamp, AttributeSupportedBrightnessLevel)
	assert.True(t, ok)
	list, ok := st.StringList()
	assert.True(t, ok)
	assert.Equal(t, []string{"off", "low", "high"}, list)

	st, ok = ds.Attribute(ComponentMain, CapabilityThermostatCoolingSetpoint, AttributeCoolingSetpointRange)
	assert.True(t, ok)
	m, ok := st.Map()
	assert.True(t, ok)
	assert.Equal(t, float64(1), m["minimum"])
	assert.Equal(t, float64(7), m["maximum"])
}

func TestApplyEvent(t *testing.T) {
	ds, err := ParseDeviceStatus([]byte(statusDoc))
	assert.NoError(t, err)

	ds.Apply(DeviceEvent{
		DeviceID:   "d1",
		Component:  ComponentMain,
		Capability: CapabilitySwitch,
		Attribute:  AttributeSwitch,
		Value:      "off",
	})
	st, _ := ds.Attribute(ComponentMain, CapabilitySwitch, AttributeSwitch)
	v, _ := st.String()
	assert.Equal(t, "off", v)

	// event for a capability the snapshot never carried
	ds.Apply(DeviceEvent{
		DeviceID:   "d1",
		Component:  "freezer",
		Capability: CapabilityTemperatureMeasurement,
		Attribute:  AttributeTemperature,
		Value:      float64(-18),
		Unit:       "C",
	})
	st, ok := ds.Attribute("freezer", CapabilityTemperatureMeasurement, AttributeTemperature)
	assert.True(t, ok)
	f, _ := st.Float()
	assert.Equal(t, float64(-18), f)
	assert.Equal(t, "C", st.Unit)
}

func TestCommandErrorSummary(t *testing.T) {
	e := &CommandError{
		RequestID: "req-123",
		Detail: ErrorDetail{
			Code:    "ConstraintViolationError",
			Message: "The request is malformed.",
			Details: []ErrorDetail{
				{Code: "CommandNotAllowed", Message: "setLevel not allowed in current state"},
			},
		},
	}
	assert.Equal(t,
		"ConstraintViolationError; The request is malformed.; CommandNotAllowed: setLevel not allowed in current state; request=req-123",
		e.Summary())

	empty := &CommandError{}
	assert.Equal(t, "command rejected", empty.Summary())
}

func TestCommandRequestBody(t *testing.T) {
	cmd := DeviceCommand{
		DeviceID:   "d1",
		Component:  ComponentMain,
		Capability: CapabilitySwitchLevel,
		Command:    CommandSetLevel,
		Arguments:  []any{80},
	}
	body, err := cmd.requestBody()
	assert.NoError(t, err)
	assert.JSONEq(t,
		`{"commands":[{"component":"main","capability":"switchLevel","command":"setLevel","arguments":[80]}]}`,
		string(body))
}
