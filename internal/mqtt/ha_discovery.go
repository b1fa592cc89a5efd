package mqtt

import (
	"fmt"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
)

type HADiscoveryConfig struct {
	Device                 HADiscoveryDevice `json:"device"`
	StateTopic             string            `json:"state_topic,omitempty"`
	CommandTopic           string            `json:"command_topic,omitempty"`
	StateClass             string            `json:"state_class,omitempty"`
	DeviceClass            string            `json:"device_class,omitempty"`
	UnitOfMeasurement      string            `json:"unit_of_measurement,omitempty"`
	AvTopic                string            `json:"availability_topic,omitempty"`
	EntityCategory         string            `json:"entity_category,omitempty"`
	Name                   string            `json:"name"`
	UniqueId               string            `json:"unique_id"`
	Platform               string            `json:"platform"`
	EnabledByDefault       *bool             `json:"enabled_by_default,omitempty"`
	PayloadOn              string            `json:"payload_on,omitempty"`
	PayloadOff             string            `json:"payload_off,omitempty"`
	PayloadPress           string            `json:"payload_press,omitempty"`
	Options                []string          `json:"options,omitempty"`
	Icon                   string            `json:"icon,omitempty"`
	Min                    float64           `json:"min,omitempty"`
	Max                    float64           `json:"max,omitempty"`
	Step                   float64           `json:"step,omitempty"`
	Mode                   string            `json:"mode,omitempty"`
	InitialValue           float64           `json:"initial,omitempty"`
	Schema                 string            `json:"schema,omitempty"`
	Brightness             bool              `json:"brightness,omitempty"`
	SupportedColorModes    []string          `json:"supported_color_modes,omitempty"`
	MinMireds              int               `json:"min_mireds,omitempty"`
	MaxMireds              int               `json:"max_mireds,omitempty"`
	PercentageStateTopic   string            `json:"percentage_state_topic,omitempty"`
	PercentageCommandTopic string            `json:"percentage_command_topic,omitempty"`
	PresetModeStateTopic   string            `json:"preset_mode_state_topic,omitempty"`
	PresetModeCommandTopic string            `json:"preset_mode_command_topic,omitempty"`
	PresetModes            []string          `json:"preset_modes,omitempty"`
	SpeedRangeMax          int               `json:"speed_range_max,omitempty"`
}

type HADiscoveryDevice struct {
	Id           []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Version      string   `json:"sw_version,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
	ViaDevice    string   `json:"via_device,omitempty"`
}

func discoveryTopic(platform, deviceId, entityId string) string {
	return fmt.Sprintf("homeassistant/%s/%s/%s/config", platform, deviceId, entityId)
}

func HADiscoverySensorTopic(sensor domain.GenericSensor) string {
	return discoveryTopic("sensor", sensor.Device.Id, sensor.Id)
}

func HADiscoveryBinarySensorTopic(sensor domain.GenericBinarySensor) string {
	return discoveryTopic("binary_sensor", sensor.Device.Id, sensor.Id)
}

func HADiscoverySwitchTopic(sw domain.GenericSwitch) string {
	return discoveryTopic("switch", sw.Device.Id, sw.Id)
}

func HADiscoveryLightTopic(light domain.GenericLight) string {
	return discoveryTopic("light", light.Device.Id, light.Id)
}

func HADiscoveryFanTopic(fan domain.GenericFan) string {
	return discoveryTopic("fan", fan.Device.Id, fan.Id)
}

func HADiscoveryInputNumberTopic(number domain.GenericInputNumber) string {
	return discoveryTopic("number", number.Device.Id, number.Id)
}

func HADiscoveryButtonTopic(button domain.GenericButton) string {
	return discoveryTopic("button", button.Device.Id, button.Id)
}

func GenericSensorToHADiscoveryMessage(client *MQTTClient, sensor domain.GenericSensor) HADiscoveryConfig {
	topic := client.SensorStateTopic(sensor.Id)
	if sensor.Id == "bridge_state" {
		topic = client.BridgeStateTopic()
	}
	return HADiscoveryConfig{
		Device:            device(sensor.Device),
		StateTopic:        topic,
		StateClass:        sensor.StateClass,
		DeviceClass:       sensor.DeviceClass,
		UnitOfMeasurement: sensor.UnitOfMeasurement,
		AvTopic:           client.BridgeStateTopic(),
		EntityCategory:    sensor.EntityCategory,
		Name:              sensor.Name,
		UniqueId:          sensor.UniqueId,
		Icon:              sensor.Icon,
		EnabledByDefault:  sensor.EnabledByDefault,
		Options:           sensor.Options,
		Platform:          "mqtt",
	}
}

func GenericBinarySensorToHADiscoveryMessage(client *MQTTClient, sensor domain.GenericBinarySensor) HADiscoveryConfig {
	topic := client.BinarySensorStateTopic(sensor.Id)
	payloadOn := MQTT_PAYLOAD_ON
	payloadOff := MQTT_PAYLOAD_OFF
	if sensor.Id == "bridge_state" {
		// the bridge connectivity sensor follows the LWT topic
		topic = client.BridgeStateTopic()
		payloadOn = MQTT_PAYLOAD_ONLINE
		payloadOff = MQTT_PAYLOAD_OFFLINE
	}
	return HADiscoveryConfig{
		Device:         device(sensor.Device),
		StateTopic:     topic,
		DeviceClass:    sensor.DeviceClass,
		AvTopic:        client.BridgeStateTopic(),
		EntityCategory: sensor.EntityCategory,
		Name:           sensor.Name,
		UniqueId:       sensor.UniqueId,
		Icon:           sensor.Icon,
		Platform:       "mqtt",
		PayloadOn:      payloadOn,
		PayloadOff:     payloadOff,
	}
}

func GenericSwitchToHADiscoveryMessage(client *MQTTClient, sw domain.GenericSwitch) HADiscoveryConfig {
	return HADiscoveryConfig{
		Device:       device(sw.Device),
		StateTopic:   client.SwitchStateTopic(sw.Id),
		CommandTopic: client.SwitchCommandTopic(sw.Id),
		AvTopic:      client.BridgeStateTopic(),
		Name:         sw.Name,
		UniqueId:     sw.UniqueId,
		Icon:         sw.Icon,
		Platform:     "mqtt",
		PayloadOn:    MQTT_PAYLOAD_ON,
		PayloadOff:   MQTT_PAYLOAD_OFF,
	}
}

func GenericLightToHADiscoveryMessage(client *MQTTClient, light domain.GenericLight) HADiscoveryConfig {
	cfg := HADiscoveryConfig{
		Device:       device(light.Device),
		StateTopic:   client.LightStateTopic(light.Id),
		CommandTopic: client.LightCommandTopic(light.Id),
		AvTopic:      client.BridgeStateTopic(),
		Name:         light.Name,
		UniqueId:     light.UniqueId,
		Platform:     "mqtt",
		Schema:       "json",
		Brightness:   light.Brightness,
	}
	cfg.SupportedColorModes = light.ColorModes
	if light.MaxColorTempKelvin > 0 {
		cfg.MinMireds = KelvinToMireds(light.MaxColorTempKelvin)
		cfg.MaxMireds = KelvinToMireds(light.MinColorTempKelvin)
	}
	return cfg
}

func GenericFanToHADiscoveryMessage(client *MQTTClient, fan domain.GenericFan) HADiscoveryConfig {
	cfg := HADiscoveryConfig{
		Device:       device(fan.Device),
		StateTopic:   client.FanStateTopic(fan.Id),
		CommandTopic: client.FanCommandTopic(fan.Id),
		AvTopic:      client.BridgeStateTopic(),
		Name:         fan.Name,
		UniqueId:     fan.UniqueId,
		Platform:     "mqtt",
		PayloadOn:    MQTT_PAYLOAD_ON,
		PayloadOff:   MQTT_PAYLOAD_OFF,
	}
	if fan.SpeedCount > 0 {
		cfg.PercentageStateTopic = client.FanPercentageStateTopic(fan.Id)
		cfg.PercentageCommandTopic = client.FanPercentageCommandTopic(fan.Id)
		cfg.SpeedRangeMax = fan.SpeedCount
	}
	if len(fan.PresetModes) > 0 {
		cfg.PresetModeStateTopic = client.FanPresetStateTopic(fan.Id)
		cfg.PresetModeCommandTopic = client.FanPresetCommandTopic(fan.Id)
		cfg.PresetModes = fan.PresetModes
	}
	return cfg
}

func GenericInputNumberToHADiscoveryMessage(client *MQTTClient, number domain.GenericInputNumber) HADiscoveryConfig {
	return HADiscoveryConfig{
		Device:       device(number.Device),
		StateTopic:   client.InputNumberStateTopic(number.Id),
		CommandTopic: client.InputNumberCommandTopic(number.Id),
		AvTopic:      client.BridgeStateTopic(),
		Name:         number.Name,
		UniqueId:     number.UniqueId,
		Icon:         number.Icon,
		Platform:     "mqtt",
		Min:          number.Min,
		Max:          number.Max,
		Step:         number.Step,
		Mode:         number.Mode,
		InitialValue: number.InitialValue,
	}
}

func GenericButtonToHADiscoveryMessage(client *MQTTClient, button domain.GenericButton) HADiscoveryConfig {
	return HADiscoveryConfig{
		Device:       device(button.Device),
		CommandTopic: client.ButtonCommandTopic(button.Id),
		AvTopic:      client.BridgeStateTopic(),
		DeviceClass:  button.DeviceClass,
		Name:         button.Name,
		UniqueId:     button.UniqueId,
		Icon:         button.Icon,
		Platform:     "mqtt",
		PayloadPress: MQTT_PAYLOAD_PRESS,
	}
}

func device(d domain.Device) HADiscoveryDevice {
	return HADiscoveryDevice{
		Id:           []string{d.Id},
		Manufacturer: d.Manufacturer,
		Version:      d.Version,
		Model:        d.Model,
		Name:         d.Name,
		ViaDevice:    d.ViaDevice,
	}
}
