package domain

import "github.com/acasal/smartthings2mqtt/pkg/smartthings"

const (
	ACTOR_ID_MASTER       = "master"
	ACTOR_ID_SMARTTHINGS  = "smartthings"
	ACTOR_ID_MQTT         = "mqtt"
	ACTOR_ID_ENTITIES     = "entities"
	ACTOR_ID_HA_DISCOVERY = "hadiscovery"
)

type GetDevicesRequest struct {
	ActorRequestMixIn
}

type GetDevicesResponse struct {
	ActorResponseMixIn
	Devices []*smartthings.FullDevice
}

type RefreshStatusesRequest struct {
	ActorRequestMixIn
	DeviceIDs []string
}

type RefreshStatusesResponse struct {
	ActorResponseMixIn
	Statuses map[string]smartthings.DeviceStatus
}

type ExecuteDeviceCommandRequest struct {
	ActorRequestMixIn
	Command smartthings.DeviceCommand
}

type ExecuteDeviceCommandResponse struct {
	ActorResponseMixIn
	// Rejected is set when the cloud refused the command. The summary is
	// logged by the requester; rejections are never retried.
	Rejected string
}

type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}

type PublishEntityUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  EntityUpdateEvent
}

type PublishEntityUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Sensors       []GenericSensor
	BinarySensors []GenericBinarySensor
	Switches      []GenericSwitch
	Lights        []GenericLight
	Fans          []GenericFan
	InputNumbers  []GenericInputNumber
	Buttons       []GenericButton
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

type GetDiscoveryRequest struct {
	ActorRequestMixIn
}

type GetDiscoveryResponse struct {
	ActorResponseMixIn
	Discovery PublishDiscoveryRequest
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
