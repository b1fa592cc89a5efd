package actor

import (
	"testing"
	"time"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/internal/util/actorutil"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetDevicesSmartThingsActor(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewSmartThingsActor(client, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetDevicesRequest{}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetDevicesResponse)

	assert.False(resp.HasResponseError())
	assert.Len(resp.Devices, 3, "device count")

	byId := map[string]*smartthings.FullDevice{}
	for _, d := range resp.Devices {
		byId[d.Info.DeviceID] = d
	}
	assert.Equal("Hallway Light", byId["dimmer-1"].Info.DisplayName(), "dimmer label")
	assert.True(byId["hood-1"].Status.HasCapability("hood", smartthings.CapabilityHoodFanSpeed), "hood capability")

	context.Stop(pid)

	as.Shutdown()
}

func TestExecuteCommandSmartThingsActor(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewSmartThingsActor(client, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.ExecuteDeviceCommandRequest{
		Command: smartthings.DeviceCommand{
			DeviceID:   "dimmer-1",
			Component:  smartthings.ComponentMain,
			Capability: smartthings.CapabilitySwitch,
			Command:    smartthings.CommandOn,
		},
	}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.ExecuteDeviceCommandResponse)

	assert.False(resp.HasResponseError())
	assert.Empty(resp.Rejected)
	assert.Len(client.ExecutedCommands(), 1, "recorded command")
	assert.Equal(smartthings.CommandOn, client.ExecutedCommands()[0].Command)

	context.Stop(pid)

	as.Shutdown()
}

func TestCommandRejectionSmartThingsActor(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()
	client.CommandErr = &smartthings.CommandError{
		RequestID: "req-9",
		Detail:    smartthings.ErrorDetail{Code: "ConstraintViolationError", Message: "not allowed"},
	}

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewSmartThingsActor(client, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.ExecuteDeviceCommandRequest{
		Command: smartthings.DeviceCommand{
			DeviceID:   "fridge-1",
			Component:  smartthings.ComponentMain,
			Capability: smartthings.CapabilityPowerCool,
			Command:    smartthings.CommandActivate,
		},
	}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.ExecuteDeviceCommandResponse)

	// a vendor rejection is summarized, not surfaced as an error
	assert.False(resp.HasResponseError())
	assert.Contains(resp.Rejected, "ConstraintViolationError")
	assert.Contains(resp.Rejected, "req-9")

	context.Stop(pid)

	as.Shutdown()
}

func TestRefreshStatusesSmartThingsActor(t *testing.T) {

	assert := assert.New(t)

	client := smartthings.NewTestClient()

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	props := actor.PropsFromProducer(func() actor.Actor { return NewSmartThingsActor(client, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.RefreshStatusesRequest{DeviceIDs: []string{"dimmer-1", "hood-1"}}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.RefreshStatusesResponse)

	assert.False(resp.HasResponseError())
	assert.Len(resp.Statuses, 2, "status count")
	assert.True(resp.Statuses["hood-1"].HasCapability("hood", smartthings.CapabilityLamp))

	context.Stop(pid)

	as.Shutdown()
}
