package entity

import (
	"fmt"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/carlmjohnson/versioninfo"
)

// BridgeDevice describes the bridge itself. Every mapped device is parented
// to it through via_device, so removing the bridge from HA removes the whole
// tree.
func BridgeDevice(baseTopic string) domain.Device {
	return domain.Device{
		Id:           fmt.Sprintf("st2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "ACasal",
		Model:        "SmartThings2MQTT",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("SmartThings2MQTT %s", md5HashShort(baseTopic)),
	}
}

// BridgeConnectivitySensor exposes the bridge LWT topic as a connectivity
// binary sensor.
func BridgeConnectivitySensor(bridgeDevice domain.Device) domain.GenericBinarySensor {
	return domain.GenericBinarySensor{
		Device:         bridgeDevice,
		Id:             "bridge_state",
		Name:           "Connection state",
		DeviceClass:    "connectivity",
		EntityCategory: "diagnostic",
		UniqueId:       uniqueId(bridgeDevice.Id, smartthings.ComponentMain, "bridge_state"),
	}
}
