package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

// Entity platforms, matching the MQTT topic scheme and HA discovery types.
const (
	PlatformSwitch       = "switch"
	PlatformLight        = "light"
	PlatformFan          = "fan"
	PlatformSensor       = "sensor"
	PlatformBinarySensor = "binary_sensor"
	PlatformNumber       = "number"
	PlatformButton       = "button"
)

// Entity is one host-facing entity mapped from a (device, component,
// capability) tuple. Adapters are pure: reads go through the shared State
// accessor, writes produce a gated DeviceCommand or nothing.
type Entity interface {
	UniqueId() string
	Platform() string
	// UpdateEvent renders the current snapshot state, or nil when the
	// backing attribute is absent.
	UpdateEvent() domain.EntityUpdateEvent
}

// Commandable entities translate a parsed entity command into zero or more
// vendor commands. An empty result means the command was dropped by a policy
// gate or is not applicable to this entity.
type Commandable interface {
	Entity
	Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand
}

type base struct {
	state    State
	device   *smartthings.FullDevice
	haDevice domain.Device
	uniqueId string
}

func newBase(device *smartthings.FullDevice, component, key string, haDevice domain.Device) base {
	return base{
		state:    NewState(device, component),
		device:   device,
		haDevice: haDevice,
		uniqueId: uniqueId(device.Info.DeviceID, component, key),
	}
}

func (b base) UniqueId() string {
	return b.uniqueId
}

func md5HashShort(s string) string {
	hash := md5.Sum([]byte(s))
	return hex.EncodeToString(hash[:])[0:8]
}

func uniqueId(deviceID, component, key string) string {
	if component == smartthings.ComponentMain {
		return fmt.Sprintf("%s_%s", md5HashShort(deviceID), key)
	}
	return fmt.Sprintf("%s_%s_%s", md5HashShort(deviceID), component, key)
}

// HADevice maps a registry record to the HA device descriptor, parented to
// the bridge.
func HADevice(info smartthings.DeviceInfo, bridgeID string) domain.Device {
	return domain.Device{
		Id:           info.DeviceID,
		Name:         info.DisplayName(),
		Version:      info.FirmwareVersion(),
		Model:        info.Model(),
		Manufacturer: info.Manufacturer(),
		ViaDevice:    bridgeID,
	}
}

func entityName(component, suffix string) string {
	if component == smartthings.ComponentMain {
		return suffix
	}
	return fmt.Sprintf("%s %s", component, suffix)
}

func optionalBool(b bool) *bool {
	return &b
}
