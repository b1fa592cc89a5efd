package entity

import (
	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

// unitRemap translates vendor unit strings to host units.
var unitRemap = map[string]string{
	"C":      "°C",
	"F":      "°F",
	"lux":    "lx",
	"μg/m^3": "µg/m³",
	"ug/m^3": "µg/m³",
}

// job state and mode remaps, vendor camelCase to host vocabulary
var washerJobStateRemap = map[string]string{
	"airWash":          "air_wash",
	"aIRinse":          "ai_rinse",
	"aISpin":           "ai_spin",
	"aIWash":           "ai_wash",
	"delayWash":        "delay_wash",
	"preWash":          "pre_wash",
	"weightSensing":    "weight_sensing",
	"freezeProtection": "freeze_protection",
}

var dryerJobStateRemap = map[string]string{
	"aIDrying":      "ai_drying",
	"internalCare":  "internal_care",
	"delayWash":     "delay_wash",
	"weightSensing": "weight_sensing",
}

var ovenJobStateRemap = map[string]string{
	"scheduledStart": "scheduled_start",
	"scheduledEnd":   "scheduled_end",
	"fastPreheat":    "fast_preheat",
	"sensorCook":     "sensor_cook",
	"selfClean":      "self_clean",
	"steamClean":     "steam_clean",
}

var ovenModeRemap = map[string]string{
	"Conventional":                  "conventional",
	"Bake":                          "bake",
	"BottomHeat":                    "bottom_heat",
	"ConvectionBake":                "convection_bake",
	"ConvectionRoast":               "convection_roast",
	"Broil":                         "broil",
	"ConvectionBroil":               "convection_broil",
	"SteamCook":                     "steam_cook",
	"SteamBake":                     "steam_bake",
	"SteamRoast":                    "steam_roast",
	"SteamBottomHeatplusConvection": "steam_bottom_heat_plus_convection",
	"Microwave":                     "microwave",
	"MWplusGrill":                   "microwave_plus_grill",
	"MWplusConvection":              "microwave_plus_convection",
	"MWplusHotBlast":                "microwave_plus_hot_blast",
	"SlowCook":                      "slow_cook",
	"Proof":                         "proof",
	"Dehydrate":                     "dehydrate",
	"Others":                        "others",
	"NotOperating":                  "not_operating",
}

var machineStateOptions = []string{"pause", "run", "stop"}

// sensorSpec is one row of the capability→sensor mapping table.
type sensorSpec struct {
	capability       smartthings.Capability
	attribute        smartthings.Attribute
	key              string
	name             string
	deviceClass      string
	stateClass       string
	entityCategory   string
	unit             string // fixed unit; empty means take the reported unit
	decimals         uint
	enabledByDefault *bool
	options          []string
	remap            map[string]string
	// mapField extracts a numeric field out of a composite map attribute
	mapField string
	// text marks sensors whose value is a string rather than a number
	text bool
}

var sensorSpecs = []sensorSpec{
	{capability: smartthings.CapabilityTemperatureMeasurement, attribute: smartthings.AttributeTemperature,
		key: "temperature", name: "Temperature", deviceClass: "temperature", stateClass: "measurement", decimals: 1},
	{capability: smartthings.CapabilityRelativeHumidity, attribute: smartthings.AttributeHumidity,
		key: "humidity", name: "Humidity", deviceClass: "humidity", stateClass: "measurement", unit: "%"},
	{capability: smartthings.CapabilityBattery, attribute: smartthings.AttributeBattery,
		key: "battery", name: "Battery", deviceClass: "battery", stateClass: "measurement", unit: "%",
		entityCategory: "diagnostic"},
	{capability: smartthings.CapabilityPowerMeter, attribute: smartthings.AttributePower,
		key: "power", name: "Power", deviceClass: "power", stateClass: "measurement", unit: "W", decimals: 1},
	{capability: smartthings.CapabilityEnergyMeter, attribute: smartthings.AttributeEnergy,
		key: "energy", name: "Energy", deviceClass: "energy", stateClass: "total_increasing", unit: "kWh", decimals: 2},
	{capability: smartthings.CapabilityPowerConsumptionReport, attribute: smartthings.AttributePowerConsumption,
		key: "power_consumption_power", name: "Power", deviceClass: "power", stateClass: "measurement",
		unit: "W", decimals: 1, mapField: "power"},
	{capability: smartthings.CapabilityPowerConsumptionReport, attribute: smartthings.AttributePowerConsumption,
		key: "power_consumption_energy", name: "Energy", deviceClass: "energy", stateClass: "total_increasing",
		unit: "kWh", decimals: 3, mapField: "energy"},
	{capability: smartthings.CapabilityPowerConsumptionReport, attribute: smartthings.AttributePowerConsumption,
		key: "power_consumption_delta", name: "Energy Difference", deviceClass: "energy", stateClass: "total_increasing",
		unit: "kWh", decimals: 3, mapField: "deltaEnergy", enabledByDefault: optionalBool(false)},
	{capability: smartthings.CapabilityPowerSource, attribute: smartthings.AttributePowerSource,
		key: "power_source", name: "Power Source", deviceClass: "enum", entityCategory: "diagnostic",
		options: []string{"battery", "dc", "mains", "unknown"}, text: true},
	{capability: smartthings.CapabilityDustSensor, attribute: smartthings.AttributeDustLevel,
		key: "dust_level", name: "Dust Level", deviceClass: "pm10", stateClass: "measurement"},
	{capability: smartthings.CapabilityDustSensor, attribute: smartthings.AttributeFineDustLevel,
		key: "fine_dust_level", name: "Fine Dust Level", deviceClass: "pm25", stateClass: "measurement"},
	{capability: smartthings.CapabilityAudioVolume, attribute: smartthings.AttributeVolume,
		key: "volume", name: "Volume", stateClass: "measurement", unit: "%"},
	{capability: smartthings.CapabilityIlluminanceMeasurement, attribute: smartthings.AttributeIlluminance,
		key: "illuminance", name: "Illuminance", deviceClass: "illuminance", stateClass: "measurement"},
	{capability: smartthings.CapabilityCarbonDioxideMeasurement, attribute: smartthings.AttributeCarbonDioxide,
		key: "co2", name: "Carbon Dioxide", deviceClass: "carbon_dioxide", stateClass: "measurement", unit: "ppm"},
	{capability: smartthings.CapabilitySignalStrength, attribute: smartthings.AttributeLqi,
		key: "lqi", name: "Link Quality", stateClass: "measurement", entityCategory: "diagnostic",
		enabledByDefault: optionalBool(false)},
	{capability: smartthings.CapabilitySignalStrength, attribute: smartthings.AttributeRssi,
		key: "rssi", name: "Signal Strength", deviceClass: "signal_strength", stateClass: "measurement",
		unit: "dBm", entityCategory: "diagnostic", enabledByDefault: optionalBool(false)},
	{capability: smartthings.CapabilityVoltageMeasurement, attribute: smartthings.AttributeVoltage,
		key: "voltage", name: "Voltage", deviceClass: "voltage", stateClass: "measurement", unit: "V"},
	{capability: smartthings.CapabilityMediaInputSource, attribute: smartthings.AttributeInputSource,
		key: "media_input_source", name: "Media Input Source", deviceClass: "enum", text: true},
	{capability: smartthings.CapabilityMediaPlayback, attribute: smartthings.AttributePlaybackStatus,
		key: "media_playback_status", name: "Media Playback Status", deviceClass: "enum",
		options: []string{"paused", "playing", "stopped", "fast forwarding", "rewinding", "buffering"}, text: true},
	{capability: smartthings.CapabilityAlarm, attribute: smartthings.AttributeAlarm,
		key: "alarm", name: "Alarm", deviceClass: "enum",
		options: []string{"both", "strobe", "siren", "off"}, text: true},
	{capability: smartthings.CapabilityOvenMode, attribute: smartthings.AttributeOvenMode,
		key: "oven_mode", name: "Oven Mode", deviceClass: "enum", entityCategory: "diagnostic",
		remap: ovenModeRemap, text: true},
	{capability: smartthings.CapabilityCEOvenMode, attribute: smartthings.AttributeOvenMode,
		key: "oven_mode", name: "Oven Mode", deviceClass: "enum", entityCategory: "diagnostic",
		remap: ovenModeRemap, text: true},
	{capability: smartthings.CapabilityOvenSetpoint, attribute: smartthings.AttributeOvenSetpoint,
		key: "oven_setpoint", name: "Oven Set Point", deviceClass: "temperature", stateClass: "measurement"},
	{capability: smartthings.CapabilityOvenOperatingState, attribute: smartthings.AttributeMachineState,
		key: "oven_machine_state", name: "Oven Machine State", deviceClass: "enum",
		options: []string{"ready", "running", "paused"}, text: true},
	{capability: smartthings.CapabilityOvenOperatingState, attribute: smartthings.AttributeOvenJobState,
		key: "oven_job_state", name: "Oven Job State", deviceClass: "enum", remap: ovenJobStateRemap, text: true},
	{capability: smartthings.CapabilityOvenOperatingState, attribute: smartthings.AttributeCompletionTime,
		key: "oven_completion_time", name: "Oven Completion Time", deviceClass: "timestamp", text: true},
	{capability: smartthings.CapabilityOvenOperatingState, attribute: smartthings.AttributeProgress,
		key: "oven_progress", name: "Oven Progress", stateClass: "measurement", unit: "%"},
	{capability: smartthings.CapabilityMeatProbe, attribute: smartthings.AttributeTemperatureSetpoint,
		key: "meat_probe_setpoint", name: "Meat Probe Set Point", deviceClass: "temperature",
		stateClass: "measurement"},
	{capability: smartthings.CapabilityMeatProbe, attribute: smartthings.AttributeStatus,
		key: "meat_probe_status", name: "Meat Probe Status", deviceClass: "enum", text: true},
	{capability: smartthings.CapabilityCooktopOperatingState, attribute: smartthings.AttributeCooktopOperatingState,
		key: "cooktop_operating_state", name: "Cooktop Operating State", deviceClass: "enum",
		options: []string{"run", "ready", "paused"}, text: true},
	{capability: smartthings.CapabilityWasherOperatingState, attribute: smartthings.AttributeMachineState,
		key: "washer_machine_state", name: "Washer Machine State", deviceClass: "enum",
		options: machineStateOptions, text: true},
	{capability: smartthings.CapabilityWasherOperatingState, attribute: smartthings.AttributeWasherJobState,
		key: "washer_job_state", name: "Washer Job State", deviceClass: "enum", remap: washerJobStateRemap, text: true},
	{capability: smartthings.CapabilityWasherOperatingState, attribute: smartthings.AttributeCompletionTime,
		key: "washer_completion_time", name: "Washer Completion Time", deviceClass: "timestamp", text: true},
	{capability: smartthings.CapabilityDryerOperatingState, attribute: smartthings.AttributeMachineState,
		key: "dryer_machine_state", name: "Dryer Machine State", deviceClass: "enum",
		options: machineStateOptions, text: true},
	{capability: smartthings.CapabilityDryerOperatingState, attribute: smartthings.AttributeDryerJobState,
		key: "dryer_job_state", name: "Dryer Job State", deviceClass: "enum", remap: dryerJobStateRemap, text: true},
	{capability: smartthings.CapabilityDryerOperatingState, attribute: smartthings.AttributeCompletionTime,
		key: "dryer_completion_time", name: "Dryer Completion Time", deviceClass: "timestamp", text: true},
	{capability: smartthings.CapabilityDishwasherOperatingState, attribute: smartthings.AttributeMachineState,
		key: "dishwasher_machine_state", name: "Dishwasher Machine State", deviceClass: "enum",
		options: machineStateOptions, text: true},
	{capability: smartthings.CapabilityDishwasherOperatingState, attribute: smartthings.AttributeDishwasherJobState,
		key: "dishwasher_job_state", name: "Dishwasher Job State", deviceClass: "enum", text: true},
	{capability: smartthings.CapabilityDishwasherOperatingState, attribute: smartthings.AttributeCompletionTime,
		key: "dishwasher_completion_time", name: "Dishwasher Completion Time", deviceClass: "timestamp", text: true},
	{capability: smartthings.CapabilityRobotCleanerCleaningMode, attribute: smartthings.AttributeRobotCleanerCleaningMode,
		key: "robot_cleaner_cleaning_mode", name: "Robot Cleaner Cleaning Mode", deviceClass: "enum",
		options: []string{"auto", "part", "repeat", "manual", "stop", "map"}, text: true},
	{capability: smartthings.CapabilityRobotCleanerMovement, attribute: smartthings.AttributeRobotCleanerMovement,
		key: "robot_cleaner_movement", name: "Robot Cleaner Movement", deviceClass: "enum", text: true},
	{capability: smartthings.CapabilityRobotCleanerTurboMode, attribute: smartthings.AttributeRobotCleanerTurboMode,
		key: "robot_cleaner_turbo_mode", name: "Robot Cleaner Turbo Mode", deviceClass: "enum",
		options: []string{"on", "off", "silence"}, text: true},
	{capability: smartthings.CapabilityWaterFilter, attribute: smartthings.AttributeWaterFilterUsage,
		key: "water_filter_usage", name: "Water Filter Usage", stateClass: "measurement", unit: "%",
		entityCategory: "diagnostic"},
}

type Sensor struct {
	base
	spec sensorSpec
	desc domain.GenericSensor
}

var _ Entity = (*Sensor)(nil)

func newSensor(device *smartthings.FullDevice, component string, spec sensorSpec, haDevice domain.Device) *Sensor {
	b := newBase(device, component, spec.key, haDevice)
	s := &Sensor{base: b, spec: spec}
	s.desc = domain.GenericSensor{
		Device:            haDevice,
		Id:                b.uniqueId,
		SensorType:        spec.key,
		Name:              entityName(component, spec.name),
		UniqueId:          b.uniqueId,
		UnitOfMeasurement: s.unit(),
		StateClass:        spec.stateClass,
		DeviceClass:       spec.deviceClass,
		EntityCategory:    spec.entityCategory,
		EnabledByDefault:  spec.enabledByDefault,
		Options:           s.options(),
	}
	return s
}

func (s *Sensor) Platform() string {
	return PlatformSensor
}

func (s *Sensor) Describe() domain.GenericSensor {
	return s.desc
}

func (s *Sensor) unit() string {
	if s.spec.unit != "" {
		return s.spec.unit
	}
	st, ok := s.state.Value(s.spec.capability, s.spec.attribute)
	if !ok || st.Unit == "" {
		return ""
	}
	if mapped, ok := unitRemap[st.Unit]; ok {
		return mapped
	}
	return st.Unit
}

// options resolves enum options, preferring a device-reported supported list
// over the static table.
func (s *Sensor) options() []string {
	if s.spec.capability == smartthings.CapabilityMediaInputSource {
		if supported, ok := s.state.StringListValue(s.spec.capability, smartthings.AttributeSupportedInputSources); ok {
			return supported
		}
	}
	if s.spec.remap != nil {
		seen := map[string]bool{}
		var opts []string
		for _, v := range s.spec.remap {
			if !seen[v] {
				seen[v] = true
				opts = append(opts, v)
			}
		}
		return opts
	}
	return s.spec.options
}

func (s *Sensor) UpdateEvent() domain.EntityUpdateEvent {
	st, ok := s.state.Value(s.spec.capability, s.spec.attribute)
	if !ok || st.Value == nil {
		return nil
	}
	if s.spec.mapField != "" {
		m, ok := st.Map()
		if !ok {
			return nil
		}
		f, ok := m[s.spec.mapField].(float64)
		if !ok {
			return nil
		}
		return domain.FloatSensorUpdateEvent{
			EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: s.uniqueId},
			Value:                  f,
			Decimals:               s.spec.decimals,
		}
	}
	if s.spec.text {
		v, ok := st.String()
		if !ok {
			return nil
		}
		if s.spec.remap != nil {
			if mapped, ok := s.spec.remap[v]; ok {
				v = mapped
			}
		}
		return domain.TextSensorUpdateEvent{
			EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: s.uniqueId},
			Value:                  v,
		}
	}
	f, ok := st.Float()
	if !ok {
		return nil
	}
	return domain.FloatSensorUpdateEvent{
		EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{Id: s.uniqueId},
		Value:                  f,
		Decimals:               s.spec.decimals,
	}
}

func sensorsFor(device *smartthings.FullDevice, component string, haDevice domain.Device) []*Sensor {
	var out []*Sensor
	for _, spec := range sensorSpecs {
		if !device.Status.HasCapability(component, spec.capability) {
			continue
		}
		// samsungce.ovenMode supersedes the plain ovenMode row
		if spec.capability == smartthings.CapabilityOvenMode &&
			device.Status.HasCapability(component, smartthings.CapabilityCEOvenMode) {
			continue
		}
		out = append(out, newSensor(device, component, spec, haDevice))
	}
	return out
}
