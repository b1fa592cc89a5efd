package smartthings

// Capability identifies a device feature in the SmartThings capability
// vocabulary. Values are the raw identifiers used on the wire.
type Capability string

// Attribute identifies a status field of a capability.
type Attribute string

// Command identifies an executable command of a capability.
type Command string

const ComponentMain = "main"

const (
	CapabilitySwitch                    Capability = "switch"
	CapabilitySwitchLevel               Capability = "switchLevel"
	CapabilityColorControl              Capability = "colorControl"
	CapabilityColorTemperature          Capability = "colorTemperature"
	CapabilityFanSpeed                  Capability = "fanSpeed"
	CapabilityAirConditionerFanMode     Capability = "airConditionerFanMode"
	CapabilityThermostatCoolingSetpoint Capability = "thermostatCoolingSetpoint"
	CapabilityTemperatureMeasurement    Capability = "temperatureMeasurement"
	CapabilityRelativeHumidity          Capability = "relativeHumidityMeasurement"
	CapabilityBattery                   Capability = "battery"
	CapabilityPowerMeter                Capability = "powerMeter"
	CapabilityEnergyMeter               Capability = "energyMeter"
	CapabilityPowerConsumptionReport    Capability = "powerConsumptionReport"
	CapabilityPowerSource               Capability = "powerSource"
	CapabilityDustSensor                Capability = "dustSensor"
	CapabilityAudioVolume               Capability = "audioVolume"
	CapabilityAlarm                     Capability = "alarm"
	CapabilityIlluminanceMeasurement    Capability = "illuminanceMeasurement"
	CapabilityCarbonDioxideMeasurement  Capability = "carbonDioxideMeasurement"
	CapabilitySmokeDetector             Capability = "smokeDetector"
	CapabilitySignalStrength            Capability = "signalStrength"
	CapabilityVoltageMeasurement        Capability = "voltageMeasurement"
	CapabilityMediaInputSource          Capability = "mediaInputSource"
	CapabilityMediaPlayback             Capability = "mediaPlayback"
	CapabilityOvenMode                  Capability = "ovenMode"
	CapabilityOvenSetpoint              Capability = "ovenSetpoint"
	CapabilityOvenOperatingState        Capability = "ovenOperatingState"
	CapabilityWasherOperatingState      Capability = "washerOperatingState"
	CapabilityDryerOperatingState       Capability = "dryerOperatingState"
	CapabilityDishwasherOperatingState  Capability = "dishwasherOperatingState"
	CapabilityRobotCleanerCleaningMode  Capability = "robotCleanerCleaningMode"
	CapabilityRobotCleanerMovement      Capability = "robotCleanerMovement"
	CapabilityRobotCleanerTurboMode     Capability = "robotCleanerTurboMode"
	CapabilityContactSensor             Capability = "contactSensor"
	CapabilityMotionSensor              Capability = "motionSensor"
	CapabilityPresenceSensor            Capability = "presenceSensor"
	CapabilityWaterSensor               Capability = "waterSensor"
	CapabilityAccelerationSensor        Capability = "accelerationSensor"
	CapabilityFilterStatus              Capability = "filterStatus"
	CapabilityTamperAlert               Capability = "tamperAlert"
	CapabilityValve                     Capability = "valve"

	// samsungce / custom capabilities
	CapabilityHoodFanSpeed          Capability = "samsungce.hoodFanSpeed"
	CapabilityLamp                  Capability = "samsungce.lamp"
	CapabilityPowerCool             Capability = "samsungce.powerCool"
	CapabilityPowerFreeze           Capability = "samsungce.powerFreeze"
	CapabilityCEOvenMode            Capability = "samsungce.ovenMode"
	CapabilityMeatProbe             Capability = "samsungce.meatProbe"
	CapabilityWaterFilter           Capability = "custom.waterFilter"
	CapabilityCooktopOperatingState Capability = "custom.cooktopOperatingState"
	CapabilityDisabledComponents    Capability = "custom.disabledComponents"
	CapabilityDisabledCapabilities  Capability = "custom.disabledCapabilities"
)

const (
	AttributeSwitch                   Attribute = "switch"
	AttributeLevel                    Attribute = "level"
	AttributeHue                      Attribute = "hue"
	AttributeSaturation               Attribute = "saturation"
	AttributeColorTemperature         Attribute = "colorTemperature"
	AttributeFanSpeed                 Attribute = "fanSpeed"
	AttributeFanMode                  Attribute = "fanMode"
	AttributeSupportedAcFanModes      Attribute = "supportedAcFanModes"
	AttributeHoodFanSpeed             Attribute = "hoodFanSpeed"
	AttributeSupportedHoodFanSpeed    Attribute = "supportedHoodFanSpeed"
	AttributeBrightnessLevel          Attribute = "brightnessLevel"
	AttributeSupportedBrightnessLevel Attribute = "supportedBrightnessLevel"
	AttributeCoolingSetpoint          Attribute = "coolingSetpoint"
	AttributeCoolingSetpointRange     Attribute = "coolingSetpointRange"
	AttributeActivated                Attribute = "activated"
	AttributeDisabledComponents       Attribute = "disabledComponents"
	AttributeDisabledCapabilities     Attribute = "disabledCapabilities"
	AttributeTemperature              Attribute = "temperature"
	AttributeHumidity                 Attribute = "humidity"
	AttributeBattery                  Attribute = "battery"
	AttributePower                    Attribute = "power"
	AttributeEnergy                   Attribute = "energy"
	AttributePowerConsumption         Attribute = "powerConsumption"
	AttributePowerSource              Attribute = "powerSource"
	AttributeDustLevel                Attribute = "dustLevel"
	AttributeFineDustLevel            Attribute = "fineDustLevel"
	AttributeVolume                   Attribute = "volume"
	AttributeAlarm                    Attribute = "alarm"
	AttributeIlluminance              Attribute = "illuminance"
	AttributeCarbonDioxide            Attribute = "carbonDioxide"
	AttributeSmoke                    Attribute = "smoke"
	AttributeLqi                      Attribute = "lqi"
	AttributeRssi                     Attribute = "rssi"
	AttributeVoltage                  Attribute = "voltage"
	AttributeInputSource              Attribute = "inputSource"
	AttributeSupportedInputSources    Attribute = "supportedInputSources"
	AttributePlaybackStatus           Attribute = "playbackStatus"
	AttributeOvenMode                 Attribute = "ovenMode"
	AttributeOvenSetpoint             Attribute = "ovenSetpoint"
	AttributeMachineState             Attribute = "machineState"
	AttributeOvenJobState             Attribute = "ovenJobState"
	AttributeWasherJobState           Attribute = "washerJobState"
	AttributeDryerJobState            Attribute = "dryerJobState"
	AttributeDishwasherJobState       Attribute = "dishwasherJobState"
	AttributeCompletionTime           Attribute = "completionTime"
	AttributeProgress                 Attribute = "progress"
	AttributeRobotCleanerCleaningMode Attribute = "robotCleanerCleaningMode"
	AttributeRobotCleanerMovement     Attribute = "robotCleanerMovement"
	AttributeRobotCleanerTurboMode    Attribute = "robotCleanerTurboMode"
	AttributeWaterFilterStatus        Attribute = "waterFilterStatus"
	AttributeWaterFilterUsage         Attribute = "waterFilterUsage"
	AttributeCooktopOperatingState    Attribute = "cooktopOperatingState"
	AttributeStatus                   Attribute = "status"
	AttributeTemperatureSetpoint      Attribute = "temperatureSetpoint"
	AttributeContact                  Attribute = "contact"
	AttributeMotion                   Attribute = "motion"
	AttributePresence                 Attribute = "presence"
	AttributeWater                    Attribute = "water"
	AttributeAcceleration             Attribute = "acceleration"
	AttributeFilterStatus             Attribute = "filterStatus"
	AttributeTamper                   Attribute = "tamper"
	AttributeValve                    Attribute = "valve"
)

const (
	CommandOn                  Command = "on"
	CommandOff                 Command = "off"
	CommandSetLevel            Command = "setLevel"
	CommandSetColor            Command = "setColor"
	CommandSetColorTemperature Command = "setColorTemperature"
	CommandSetFanSpeed         Command = "setFanSpeed"
	CommandSetFanMode          Command = "setFanMode"
	CommandSetHoodFanSpeed     Command = "setHoodFanSpeed"
	CommandSetBrightnessLevel  Command = "setBrightnessLevel"
	CommandSetCoolingSetpoint  Command = "setCoolingSetpoint"
	CommandStop                Command = "stop"
	CommandResetWaterFilter    Command = "resetWaterFilter"
	CommandActivate            Command = "activate"
	CommandDeactivate          Command = "deactivate"
)
